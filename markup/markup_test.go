package markup

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	fp "github.com/npillmayer/fpweb"
	"github.com/npillmayer/fpweb/dom"
	"github.com/npillmayer/fpweb/dom/domdbg"
	p "github.com/npillmayer/fpweb/parsec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.markup")
	defer teardown()
	//
	attr, rest, err := p.Parse(Attribute(), `test="foobar"`)
	require.NoError(t, err)
	assert.Equal(t, fp.P("test", "foobar"), attr)
	assert.Equal(t, "", rest)

	attr, _, err = p.Parse(Attribute(), `data-x = "a b <c>"`)
	require.NoError(t, err)
	assert.Equal(t, fp.P("data-x", "a b <c>"), attr)

	for _, bad := range []string{`test`, `test=foo`, `test=""`, `test="open`, `1x="a"`} {
		_, _, err = p.Parse(Attribute(), bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestAttributes(t *testing.T) {
	attrs, rest, err := p.Parse(Attributes(), `id="a" class="b c"
	  lang="en">`)
	require.NoError(t, err)
	assert.Equal(t, dom.AttrMap{"id": "a", "class": "b c", "lang": "en"}, attrs)
	assert.Equal(t, ">", rest)

	attrs, rest, err = p.Parse(Attributes(), ">")
	require.NoError(t, err)
	assert.Empty(t, attrs)
	assert.Equal(t, ">", rest)
}

func TestAttributesLastWins(t *testing.T) {
	attrs, _, err := p.Parse(Attributes(), `id="first" id="second"`)
	require.NoError(t, err)
	assert.Equal(t, dom.AttrMap{"id": "second"}, attrs)
}

func TestOpenTag(t *testing.T) {
	tag, rest, err := p.Parse(OpenTag(), `<p id="test">`)
	require.NoError(t, err)
	assert.Equal(t, "p", tag.Left)
	assert.Equal(t, dom.AttrMap{"id": "test"}, tag.Right)
	assert.Equal(t, "", rest)

	tag, _, err = p.Parse(OpenTag(), `<div >`)
	require.NoError(t, err)
	assert.Equal(t, "div", tag.Left)
	assert.Empty(t, tag.Right)
}

func TestOpenTagFailures(t *testing.T) {
	for _, bad := range []string{`<p id>`, `<p id=>`, `<h1>`, `< p>`, `<p`, `p>`, `<x-y>`} {
		_, _, err := p.Parse(OpenTag(), bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestOpenTagRoundTrip(t *testing.T) {
	names := []string{"a", "div", "section", "Span"}
	attrs := []fp.Pair[string, string]{
		fp.P("id", "x"), fp.P("class", "one two"), fp.P("data-role", "main"),
		fp.P("href", "https://example.com/?a=1"), fp.P("title", "it's <fine>"),
	}
	for i, name := range names {
		for n := 0; n <= len(attrs); n++ {
			m := dom.AttrMap{}
			for _, a := range attrs[:n] {
				m[a.Left] = a.Right
			}
			src := serializeOpenTag(name, m, i%2 == 1)
			tag, rest, err := p.Parse(OpenTag(), src)
			require.NoError(t, err, "source %q", src)
			assert.Equal(t, name, tag.Left)
			assert.Equal(t, m, tag.Right, "source %q", src)
			assert.Equal(t, "", rest)
		}
	}
}

func serializeOpenTag(name string, attrs dom.AttrMap, loose bool) string {
	var b strings.Builder
	b.WriteString("<" + name)
	sep := " "
	if loose {
		sep = " \n "
	}
	keys := attrs.Keys()
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for _, k := range keys {
		if loose {
			fmt.Fprintf(&b, "%s%s = %q", sep, k, attrs[k])
		} else {
			fmt.Fprintf(&b, "%s%s=%q", sep, k, attrs[k])
		}
	}
	b.WriteString(">")
	return b.String()
}

func TestCloseTag(t *testing.T) {
	tag, rest, err := p.Parse(CloseTag(), "</div>x")
	require.NoError(t, err)
	assert.Equal(t, "div", tag)
	assert.Equal(t, "x", rest)

	for _, bad := range []string{"<div>", "</ div>", "</div", "</>"} {
		_, _, err := p.Parse(CloseTag(), bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestText(t *testing.T) {
	n, rest, err := p.Parse(Text(), "hello world</p>")
	require.NoError(t, err)
	assert.Equal(t, dom.NewText("hello world"), n)
	assert.Equal(t, "</p>", rest)
	_, _, err = p.Parse(Text(), "<p>")
	assert.Error(t, err)
}

func TestElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.markup")
	defer teardown()
	//
	n, rest, err := Parse("<p>hello world</p>")
	require.NoError(t, err)
	assert.Equal(t, dom.NewElement("p", dom.AttrMap{}, dom.NewText("hello world")), n)
	assert.Equal(t, "", rest)
}

func TestNestedElement(t *testing.T) {
	n, rest, err := Parse("<div><p>hello world</p></div>")
	require.NoError(t, err)
	expected := dom.NewElement("div", nil,
		dom.NewElement("p", nil, dom.NewText("hello world")))
	assert.Equal(t, expected, n)
	assert.Equal(t, "", rest)
	t.Logf("tree =\n%s", domdbg.Print(n))
}

func TestMixedContents(t *testing.T) {
	src := `<div id="main">
  <p class="x">one</p>
  two <em>three</em>
</div>tail`
	n, rest, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "tail", rest)
	div := n.(*dom.Element)
	require.Len(t, div.Children, 5)
	assert.Equal(t, dom.NewText("\n  "), div.Children[0])
	assert.Equal(t, "x", div.Children[1].(*dom.Element).Attributes["class"])
	assert.Equal(t, dom.NewText("\n  two "), div.Children[2])
	assert.Equal(t, "em", div.Children[3].NodeName())
	assert.Equal(t, dom.NewText("\n"), div.Children[4])
}

func TestEmptyElement(t *testing.T) {
	n, _, err := Parse("<div></div>")
	require.NoError(t, err)
	assert.Empty(t, n.(*dom.Element).Children)
}

func TestMismatchedTagName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.markup")
	defer teardown()
	//
	_, _, err := Parse("<p>hello world</div>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatchedTagName))
	var perr *p.Error
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.IsSemantic())
	assert.Equal(t, 0, perr.Offset)
	t.Logf("error = %v", err)
}

func TestNestedMismatchIsNotBacktracked(t *testing.T) {
	_, _, err := Parse("<div>a<p>b</i>c</div>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatchedTagName))
	assert.Equal(t, 6, err.(*p.Error).Offset)
}

func TestSyntaxErrorsInside(t *testing.T) {
	_, _, err := Parse(`<div><p id>x</p></div>`)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMismatchedTagName))
	_, _, err = Parse(`<div>unclosed`)
	require.Error(t, err)
	_, _, err = Parse(`text`)
	require.Error(t, err)
}

func TestMaxDepth(t *testing.T) {
	g := NewGrammar(MaxDepth(2))
	_, _, err := p.Parse(g.Element(), "<a><b>x</b></a>")
	require.NoError(t, err)
	_, _, err = p.Parse(g.Element(), "<a><b><i>x</i></b></a>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, p.ErrNestingTooDeep))
}

func TestDeepNestingWithDefaultLimit(t *testing.T) {
	depth := DefaultMaxDepth + 1
	src := strings.Repeat("<b>", depth) + "x" + strings.Repeat("</b>", depth)
	_, _, err := Parse(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, p.ErrNestingTooDeep))

	depth = DefaultMaxDepth
	src = strings.Repeat("<b>", depth) + "x" + strings.Repeat("</b>", depth)
	_, _, err = Parse(src)
	require.NoError(t, err)
}

func TestContents(t *testing.T) {
	g := NewGrammar()
	nodes, rest, err := p.Parse(g.Contents(), "a<b>c</b>d</x>")
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "</x>", rest)
}

func TestParseDocument(t *testing.T) {
	n, err := ParseDocument("\n  <html><body><p>hi</p></body></html>\n")
	require.NoError(t, err)
	assert.Equal(t, "html", n.NodeName())

	_, err = ParseDocument("<p>hi</p><p>again</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of input")

	_, err = ParseDocument("<p>hi</b>")
	assert.True(t, errors.Is(err, ErrMismatchedTagName))
}

func TestParseRenderParseIsIdempotent(t *testing.T) {
	sources := []string{
		"<p>hello world</p>",
		"<div><p>hello world</p></div>",
		`<ul class="list" id="x"><li>one</li><li data-n="2">two</li></ul>`,
		"<div>\n  text <span>inner</span> more\n</div>",
		`<a href="https://example.com/path">link</a>`,
		"<p>it's</p>",
		`<p>say "hi"</p>`,
		"<div><br></br></div>",
		"<pre>\nx</pre>",
		`<p title="a'b">x &amp; y</p>`,
		`<DIV><Span data-x="1">a</Span></DIV>`,
	}
	for _, src := range sources {
		first, err := ParseDocument(src)
		require.NoError(t, err, src)
		var buf bytes.Buffer
		require.NoError(t, dom.Render(&buf, first))
		assert.Equal(t, src, buf.String())
		second, err := ParseDocument(buf.String())
		require.NoError(t, err, buf.String())
		assert.True(t, dom.Equal(first, second), "%s\n!=\n%s", domdbg.Print(first), domdbg.Print(second))
	}
}

func TestAgreesWithHTMLParser(t *testing.T) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, src := range []string{
		`<div id="main"><p>hello world</p><span class="a b">x</span></div>`,
		`<section><h>title</h><article>text <em>more</em></article></section>`,
	} {
		ours, err := ParseDocument(src)
		require.NoError(t, err)
		frags, err := html.ParseFragment(strings.NewReader(src), body)
		require.NoError(t, err)
		require.Len(t, frags, 1)
		theirs, err := dom.FromHTML(frags[0])
		require.NoError(t, err)
		assert.True(t, dom.Equal(ours, theirs), "%s\n!=\n%s", domdbg.Print(ours), domdbg.Print(theirs))
	}
}

func TestGrammarIsSafeForConcurrentUse(t *testing.T) {
	g := NewGrammar()
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := fmt.Sprintf(`<div n="%d"><p>%d</p></div>`, i, i)
			_, _, errs[i] = p.Parse(g.Element(), src)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
