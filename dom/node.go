package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"strings"

	"github.com/j4587698/dcsoup/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DomNode is the payload type of DOM trees, linking a generic tree node
// to a node of the underlying HTML parse tree.
type DomNode struct {
	tree.Node[*DomNode] // we build on top of general purpose tree
	htmlNode            *html.Node
}

// NewNodeForHTMLNode creates a new DOM node linked to an HTML node.
// The HTML node is wrapped as-is; its children are not mirrored (see
// FromHTML for building whole trees).
func NewNodeForHTMLNode(h *html.Node) *tree.Node[*DomNode] {
	dn := &DomNode{}
	dn.Payload = dn // Payload will always reference the node itself
	dn.htmlNode = h
	return &dn.Node
}

// Node gets the DOM node from a generic tree node.
func Node(n *tree.Node[*DomNode]) *DomNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML parse-tree node corresponding to this DOM node.
func (dn *DomNode) HTMLNode() *html.Node {
	return dn.htmlNode
}

// TreeNode gets the generic tree node for this DOM node.
func (dn *DomNode) TreeNode() *tree.Node[*DomNode] {
	return &dn.Node
}

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.).
func (dn *DomNode) NodeType() html.NodeType {
	if dn == nil || dn.htmlNode == nil {
		return html.ErrorNode
	}
	return dn.htmlNode.Type
}

// NodeName returns a name for this node, depending on its type:
// the tag name for elements, "#text" for text nodes, "#document" for the
// document node and "#comment" for comments.
func (dn *DomNode) NodeName() string {
	h := dn.htmlNode
	if h == nil {
		return ""
	}
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return h.Data
	}
	return ""
}

// IsElement returns true for element nodes.
func (dn *DomNode) IsElement() bool {
	return dn != nil && dn.htmlNode != nil && dn.htmlNode.Type == html.ElementNode
}

// IsText returns true for text nodes.
func (dn *DomNode) IsText() bool {
	return dn != nil && dn.htmlNode != nil && dn.htmlNode.Type == html.TextNode
}

// Attr returns the value of an attribute of an element node, or "" if the
// attribute is not set.
func (dn *DomNode) Attr(key string) string {
	if dn == nil || dn.htmlNode == nil {
		return ""
	}
	for _, a := range dn.htmlNode.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr returns true if an attribute with the given key is set.
func (dn *DomNode) HasAttr(key string) bool {
	if dn == nil || dn.htmlNode == nil {
		return false
	}
	for _, a := range dn.htmlNode.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute of an element node, overwriting a present value.
func (dn *DomNode) SetAttr(key, value string) {
	if dn == nil || dn.htmlNode == nil {
		return
	}
	for i, a := range dn.htmlNode.Attr {
		if a.Key == key {
			dn.htmlNode.Attr[i].Val = value
			return
		}
	}
	dn.htmlNode.Attr = append(dn.htmlNode.Attr, html.Attribute{Key: key, Val: value})
}

func (dn *DomNode) String() string {
	return "DOM(" + dn.NodeName() + ")"
}

// --- Building a DOM from HTML ----------------------------------------------

// FromHTML reads and parses HTML input and returns the root (document)
// node of the resulting DOM tree.
func FromHTML(r io.Reader) (*tree.Node[*DomNode], error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromHTMLTree(doc), nil
}

// FromString parses HTML from a string; see FromHTML.
func FromString(s string) (*tree.Node[*DomNode], error) {
	return FromHTML(strings.NewReader(s))
}

// fromHTMLTree mirrors a parsed HTML tree into a DOM tree. We do not
// recurse; documents in the wild nest deeply.
func fromHTMLTree(h *html.Node) *tree.Node[*DomNode] {
	root := NewNodeForHTMLNode(h)
	type frame struct {
		h *html.Node
		t *tree.Node[*DomNode]
	}
	stack := []frame{{h, root}}
	count := 1
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ch := f.h.FirstChild; ch != nil; ch = ch.NextSibling {
			tn := NewNodeForHTMLNode(ch)
			f.t.AddChild(tn)
			stack = append(stack, frame{ch, tn})
			count++
		}
	}
	tracer().Debugf("mirrored HTML parse tree with %d nodes", count)
	return root
}

// Body returns the <body> element of a DOM, or nil if there is none.
func Body(root *tree.Node[*DomNode]) *tree.Node[*DomNode] {
	body, err := FindFirst(EvaluatorFunc(
		func(_, candidate *tree.Node[*DomNode]) bool {
			dn := Node(candidate)
			return dn.IsElement() && dn.htmlNode.DataAtom == atom.Body
		}), root)
	if err != nil {
		tracer().Errorf("DOM has no body: %v", err)
		return nil
	}
	return body
}
