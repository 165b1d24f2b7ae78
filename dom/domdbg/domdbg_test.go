package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/fpweb/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() dom.Node {
	return dom.NewElement("div", dom.AttrMap{"id": "x"},
		dom.NewElement("p", nil, dom.NewText("hello world, long text")),
		dom.NewElement("br", nil),
	)
}

func TestPrint(t *testing.T) {
	s := Print(tree())
	t.Logf("tree =\n%s", s)
	assert.Contains(t, s, `div {id="x"}`)
	assert.Contains(t, s, `"hello world, long text"`)
	assert.Contains(t, s, "br")
}

func TestToGraphViz(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(tree(), &buf))
	dot := buf.String()
	t.Logf("dot =\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `node00001	[ label="div"`)
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "hello␣worl...")
}

func TestShortTextEscapesDOT(t *testing.T) {
	assert.Equal(t, `"\"say␣\"hi\"␣\\...\""`, shortText(dom.NewText(`say "hi" \o/`)))
	assert.Equal(t, `"\"a\\b\""`, shortText(dom.NewText(`a\b`)))
	assert.Equal(t, `""`, shortText(dom.NewElement("p", nil)))

	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(dom.NewElement("p", nil, dom.NewText(`"q"`)), &buf))
	assert.Contains(t, buf.String(), `label="\"\"q\"\""`)
}
