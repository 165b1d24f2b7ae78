package markup

import (
	"sync"

	fp "github.com/npillmayer/fpweb"
	"github.com/npillmayer/fpweb/dom"
	p "github.com/npillmayer/fpweb/parsec"
	"github.com/npillmayer/fpweb/result"
	"github.com/pkg/errors"
)

// ErrMismatchedTagName is the cause of parse errors for elements whose
// closing tag does not match the opening tag.
var ErrMismatchedTagName = errors.New("mismatched tag name")

// DefaultMaxDepth is the default limit for the nesting of elements.
const DefaultMaxDepth = 256

// Grammar holds the recursive rules of the markup grammar.
type Grammar struct {
	element  *p.Rule[dom.Node]
	contents *p.Rule[[]dom.Node]
	maxDepth int
}

// Option configures a grammar.
type Option func(*Grammar)

// MaxDepth sets the maximum nesting depth of elements. Deeper documents
// fail to parse with an error wrapping parsec.ErrNestingTooDeep.
func MaxDepth(depth int) Option {
	return func(g *Grammar) {
		if depth > 0 {
			g.maxDepth = depth
		}
	}
}

// NewGrammar creates a markup grammar.
func NewGrammar(opts ...Option) *Grammar {
	g := &Grammar{
		element:  p.NewRule[dom.Node]("element"),
		contents: p.NewRule[[]dom.Node]("contents"),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.contents.Define(p.Many(p.Choice(p.Attempt(g.element.Parser()), Text())))
	g.element.Define(p.AndThen(
		p.Seq3(OpenTag(), p.Nested(g.maxDepth, g.contents.Parser()), CloseTag()),
		matchTagNames,
	))
	tracer().Debugf("created markup grammar, max depth = %d", g.maxDepth)
	return g
}

type elementParts = fp.Triple[fp.Pair[string, dom.AttrMap], []dom.Node, string]

func matchTagNames(x elementParts) result.Result[dom.Node] {
	open, attrs := x.First.Decompose()
	if open != x.Third {
		return result.Err[dom.Node](errors.Wrapf(ErrMismatchedTagName,
			"<%s> closed by </%s>", open, x.Third))
	}
	return result.Ok[dom.Node](dom.NewElement(open, attrs, x.Second...))
}

// Element returns the parser for a single element, including its contents.
func (g *Grammar) Element() p.Parser[dom.Node] {
	return g.element.Parser()
}

// Contents returns the parser for a sequence of elements and text nodes.
func (g *Grammar) Contents() p.Parser[[]dom.Node] {
	return g.contents.Parser()
}

// Document returns a parser for an element, optionally surrounded by white
// space, which has to consume the complete input.
func (g *Grammar) Document() p.Parser[dom.Node] {
	return p.Skip(p.Then(ws, g.Element()), p.Skip(ws, p.EOF()))
}

// --- Convenience functions -------------------------------------------------

var (
	stdOnce sync.Once
	std     *Grammar
)

func standardGrammar() *Grammar {
	stdOnce.Do(func() {
		std = NewGrammar()
	})
	return std
}

// Parse parses an element from the start of src. It returns the element and
// the unconsumed remainder of src.
func Parse(src string) (dom.Node, string, error) {
	return p.Parse(standardGrammar().Element(), src)
}

// ParseDocument parses src, which has to consist of exactly one element,
// optionally surrounded by white space.
func ParseDocument(src string) (dom.Node, error) {
	n, _, err := p.Parse(standardGrammar().Document(), src)
	if err != nil {
		return nil, errors.Wrap(err, "markup")
	}
	return n, nil
}
