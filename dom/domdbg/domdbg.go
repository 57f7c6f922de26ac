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
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM and a Writer.
func ToGraphViz(doc *dom.W3CNode, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*html.Node]string, 4096)
	nodes(doc, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.W3CNode, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.W3CNode
	Name string
}

func nodes(n *dom.W3CNode, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	type frame struct {
		n, parent *dom.W3CNode
	}
	stack := []frame{{n, nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		domNode(f.n, w, dict, gparams)
		if f.parent != nil {
			domEdge(f.parent, f.n, w, dict, gparams)
		}
		if f.n.HasChildNodes() {
			children := f.n.ChildNodes()
			for i := children.Length() - 1; i >= 0; i-- {
				ch := children.Item(i).(*dom.W3CNode)
				stack = append(stack, frame{ch, f.n})
			}
		}
	}
}

func domNode(n *dom.W3CNode, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	name := dict[n.HTMLNode()]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n.HTMLNode()] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.W3CNode, n2 *dom.W3CNode, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	name1 := dict[n1.HTMLNode()]
	name2 := dict[n2.HTMLNode()]
	e := edge{node{n1, name1}, node{n2, name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(n *dom.W3CNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Textual tree dump --------------------------------------------------

// treePrinter feeds the walker's enter/exit nesting into a treeprint tree.
type treePrinter struct {
	stack []tp.Tree
}

func (p *treePrinter) OnEnter(n *tree.Node[*dom.DomNode], depth int) error {
	label := dom.Node(n).NodeName()
	if dom.Node(n).IsText() {
		label = fmt.Sprintf("%q", dom.Node(n).HTMLNode().Data)
	}
	top := p.stack[len(p.stack)-1]
	if n.ChildCount() > 0 {
		p.stack = append(p.stack, top.AddBranch(label))
	} else {
		top.AddNode(label)
	}
	return nil
}

func (p *treePrinter) OnExit(n *tree.Node[*dom.DomNode], depth int) error {
	if n.ChildCount() > 0 && len(p.stack) > 1 {
		p.stack = p.stack[:len(p.stack)-1]
	}
	return nil
}

// TreePrint returns a textual diagram of a DOM tree, one line per node,
// indented by nesting depth.
func TreePrint(root *tree.Node[*dom.DomNode]) string {
	p := tp.New()
	printer := &treePrinter{stack: []tp.Tree{p}}
	if err := tree.Traverse(printer, root); err != nil {
		return fmt.Sprintf("tree print aborted: %v", err)
	}
	return p.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
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
