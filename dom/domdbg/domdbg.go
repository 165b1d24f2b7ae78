/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/fpweb/dom"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented, human readable rendition of a DOM tree,
// suitable for test logs.
func Print(n dom.Node) string {
	printer := tp.New()
	printNode(printer, n)
	return printer.String()
}

func printNode(printer tp.Tree, n dom.Node) {
	switch x := n.(type) {
	case *dom.Text:
		printer.AddNode(fmt.Sprintf("%q", x.Data))
	case *dom.Element:
		label := x.TagName
		if len(x.Attributes) > 0 {
			label += " " + x.Attributes.String()
		}
		if len(x.Children) == 0 {
			printer.AddNode(label)
			return
		}
		branch := printer.AddBranch(label)
		for _, ch := range x.Children {
			printNode(branch, ch)
		}
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM and a Writer.
func ToGraphViz(doc dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[dom.Node]string, 256)
	if err = nodes(doc, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N    dom.Node
	Name string
}

func nodes(n dom.Node, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	if e, ok := n.(*dom.Element); ok {
		for _, ch := range e.Children {
			if err := nodes(ch, w, dict, gparams); err != nil {
				return err
			}
			if err := domEdge(n, ch, w, dict, gparams); err != nil {
				return err
			}
		}
	}
	return nil
}

func domNode(n dom.Node, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	return gparams.NodeTmpl.Execute(w, &node{n, name})
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 dom.Node, n2 dom.Node, w io.Writer, dict map[dom.Node]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

// quotes and backslashes inside a DOT string
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func shortText(n dom.Node) string {
	t, ok := n.(*dom.Text)
	if !ok {
		return `""`
	}
	data, ellipsis := t.Data, ""
	if r := []rune(data); len(r) > 10 {
		data, ellipsis = string(r[:10]), "..."
	}
	data = dotEscaper.Replace(data)
	s := "\"\\\"" + data + ellipsis + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
