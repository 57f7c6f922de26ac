package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/j4587698/dcsoup/dom/w3cdom"
	"github.com/j4587698/dcsoup/tree"
	"golang.org/x/net/html"
)

// W3CNode is a read-only adapter for DOM nodes, implementing interface
// w3cdom.Node.
type W3CNode struct {
	tn *tree.Node[*DomNode]
}

var _ w3cdom.Node = &W3CNode{}

// NewW3CNode wraps a DOM node into a W3C adapter. Returns nil for nil input.
func NewW3CNode(n *tree.Node[*DomNode]) *W3CNode {
	if n == nil {
		return nil
	}
	return &W3CNode{tn: n}
}

// HTMLNode returns the underlying HTML parse-tree node.
func (w *W3CNode) HTMLNode() *html.Node {
	return Node(w.tn).HTMLNode()
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	return Node(w.tn).NodeType()
}

// NodeName is part of interface w3cdom.Node.
func (w *W3CNode) NodeName() string {
	return Node(w.tn).NodeName()
}

// NodeValue is part of interface w3cdom.Node.
// Text and comment nodes return their data, other types return "".
func (w *W3CNode) NodeValue() string {
	h := Node(w.tn).HTMLNode()
	if h == nil {
		return ""
	}
	switch h.Type {
	case html.TextNode, html.CommentNode:
		return h.Data
	}
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	h := Node(w.tn).HTMLNode()
	return h != nil && len(h.Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	p := w.tn.Parent()
	if p == nil {
		return nil
	}
	return NewW3CNode(p)
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.tn.ChildCount() > 0
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	children := w.tn.Children()
	list := make(w3cNodeList, 0, len(children))
	for _, ch := range children {
		list = append(list, NewW3CNode(ch))
	}
	return list
}

// Children is part of interface w3cdom.Node. It lists element children only.
func (w *W3CNode) Children() w3cdom.NodeList {
	var list w3cNodeList
	for _, ch := range w.tn.Children() {
		if Node(ch).IsElement() {
			list = append(list, NewW3CNode(ch))
		}
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	ch, ok := w.tn.Child(0)
	if !ok {
		return nil
	}
	return NewW3CNode(ch)
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	s := w.tn.NextSibling()
	if s == nil {
		return nil
	}
	return NewW3CNode(s)
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	h := Node(w.tn).HTMLNode()
	if h == nil {
		return w3cAttrMap(nil)
	}
	return w3cAttrMap(h.Attr)
}

// TextContent is part of interface w3cdom.Node.
func (w *W3CNode) TextContent() (string, error) {
	return TextContent(w.tn)
}

// --- NodeList ----------------------------------------------------------

type w3cNodeList []*W3CNode

var _ w3cdom.NodeList = w3cNodeList{}

func (list w3cNodeList) Length() int {
	return len(list)
}

func (list w3cNodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}

func (list w3cNodeList) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, n := range list {
		sb.WriteString(n.NodeName())
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}

// --- Attributes --------------------------------------------------------

type w3cAttr struct {
	attr html.Attribute
}

var _ w3cdom.Attr = w3cAttr{}

func (a w3cAttr) Namespace() string { return a.attr.Namespace }
func (a w3cAttr) Key() string       { return a.attr.Key }
func (a w3cAttr) Value() string     { return a.attr.Val }

type w3cAttrMap []html.Attribute

var _ w3cdom.NamedNodeMap = w3cAttrMap{}

func (m w3cAttrMap) Length() int {
	return len(m)
}

func (m w3cAttrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return w3cAttr{attr: m[i]}
}

func (m w3cAttrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return w3cAttr{attr: a}
		}
	}
	return nil
}
