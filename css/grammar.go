package css

import (
	fp "github.com/npillmayer/fpweb"
	p "github.com/npillmayer/fpweb/parsec"
	"github.com/npillmayer/fpweb/result"
	"github.com/pkg/errors"
)

// ErrInvalidOperator is the cause of parse errors for attribute selectors
// with an unsupported comparison operator, e.g. '^='.
var ErrInvalidOperator = errors.New("invalid attribute selector operator")

// characters which may form an attribute selector operator
const operatorChars = "=~|^$*!<>"

var ws = p.Whitespace()

func letters() p.Parser[string] {
	return p.Many1String(p.Letter())
}

// --- Declarations ----------------------------------------------------------

// DeclarationParser parses 'name: keyword'.
func DeclarationParser() p.Parser[Declaration] {
	name := p.Skip(p.Label(letters(), "property name"), ws)
	colon := p.Skip(p.Char(':'), ws)
	value := p.Map(p.Label(letters(), "keyword"), func(s string) Value {
		return Keyword(s)
	})
	return p.Map(p.Seq3(name, colon, value), func(x fp.Triple[string, rune, Value]) Declaration {
		return Declaration{Name: x.First, Value: x.Third}
	})
}

// DeclarationsParser parses a possibly empty list of declarations, separated and
// optionally terminated by ';'.
func DeclarationsParser() p.Parser[[]Declaration] {
	return p.SepEndBy(p.Skip(DeclarationParser(), ws), p.Skip(p.Char(';'), ws))
}

// --- Selectors -------------------------------------------------------------

// SimpleSelectorParser parses one of the simple selectors. Alternatives are
// tried in the order universal, id, class, attribute, type.
func SimpleSelectorParser() p.Parser[Selector] {
	return p.Choice(
		universalSelector(),
		idSelector(),
		classSelector(),
		p.Attempt(attributeSelector()),
		typeSelector(),
	)
}

func universalSelector() p.Parser[Selector] {
	return p.Map(p.Char('*'), fp.Always[rune, Selector](UniversalSelector{}))
}

func idSelector() p.Parser[Selector] {
	return p.Map(p.Then(p.Char('#'), letters()), func(s string) Selector {
		return IDSelector{IDName: s}
	})
}

func classSelector() p.Parser[Selector] {
	return p.Map(p.Then(p.Char('.'), letters()), func(s string) Selector {
		return ClassSelector{ClassName: s}
	})
}

func typeSelector() p.Parser[Selector] {
	return p.Map(letters(), func(s string) Selector {
		return TypeSelector{TagName: s}
	})
}

// attributeSelector parses tag[attr op value]
func attributeSelector() p.Parser[Selector] {
	clause := p.Seq3(letters(), attributeOp(), letters())
	sel := p.Seq2(letters(), p.Between(p.Char('['), p.Char(']'), clause))
	return p.Map(sel, func(x fp.Pair[string, fp.Triple[string, AttributeSelectorOp, string]]) Selector {
		attr, op, value := x.Right.Decompose()
		return AttributeSelector{TagName: x.Left, Op: op, Attribute: attr, Value: value}
	})
}

func attributeOp() p.Parser[AttributeSelectorOp] {
	symbol := p.Label(p.Many1String(p.OneOf(operatorChars)), "attribute selector operator")
	return p.AndThen(symbol, func(sym string) result.Result[AttributeSelectorOp] {
		switch sym {
		case "=":
			return result.Ok(OpEq)
		case "~=":
			return result.Ok(OpContain)
		}
		tracer().Infof("unsupported attribute selector operator %q", sym)
		return result.Err[AttributeSelectorOp](errors.Wrapf(ErrInvalidOperator, "%q", sym))
	})
}

// SelectorsParser parses a comma separated list of one or more simple selectors.
func SelectorsParser() p.Parser[[]Selector] {
	return p.SepBy1(p.Skip(SimpleSelectorParser(), ws), p.Skip(p.Char(','), ws))
}

// --- Rules -----------------------------------------------------------------

// RuleParser parses 'selectors { declarations }'.
func RuleParser() p.Parser[Rule] {
	lbrace := p.Skip(p.Char('{'), ws)
	rbrace := p.Skip(p.Char('}'), ws)
	return p.Map(p.Seq4(SelectorsParser(), lbrace, DeclarationsParser(), rbrace),
		func(x fp.Quad[[]Selector, rune, []Declaration, rune]) Rule {
			return Rule{Selectors: x.First, Declarations: x.Third}
		})
}

// StylesheetParser parses a possibly empty sequence of rules, optionally
// preceded by white space.
func StylesheetParser() p.Parser[Stylesheet] {
	return p.Map(p.Then(ws, p.Many(RuleParser())), func(rules []Rule) Stylesheet {
		return Stylesheet{Rules: rules}
	})
}

// --- Convenience functions -------------------------------------------------

// Parse parses a complete style sheet.
func Parse(src string) (*Stylesheet, error) {
	sheet, _, err := p.Parse(p.Skip(StylesheetParser(), p.EOF()), src)
	if err != nil {
		return nil, errors.Wrap(err, "css")
	}
	tracer().Debugf("parsed style sheet with %d rules", len(sheet.Rules))
	return &sheet, nil
}

// ParseDeclarations parses a list of declarations from the start of src.
// It returns the declarations and the unconsumed remainder of src.
func ParseDeclarations(src string) ([]Declaration, string, error) {
	return p.Parse(DeclarationsParser(), src)
}

// ParseSimpleSelector parses a simple selector from the start of src.
func ParseSimpleSelector(src string) (Selector, string, error) {
	return p.Parse(SimpleSelectorParser(), src)
}

// ParseSelectors parses a selector list from the start of src.
func ParseSelectors(src string) ([]Selector, string, error) {
	return p.Parse(SelectorsParser(), src)
}

// ParseRule parses a single rule from the start of src.
func ParseRule(src string) (Rule, string, error) {
	return p.Parse(RuleParser(), src)
}
