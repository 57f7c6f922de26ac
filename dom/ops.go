package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/j4587698/dcsoup/tree"
	"golang.org/x/net/html"
)

// ErrNotAttached is thrown if an operation needs a parent node, but the
// receiver is detached.
var ErrNotAttached = errors.New("node is not attached to a tree")

// ErrNoNode is thrown if an operation is called on an absent node.
var ErrNoNode = errors.New("operation needs a non-nil DOM node")

/*
Structural mutation always happens on both trees: the generic tree this
DOM is made of, and the underlying HTML parse tree. The two must not
diverge, or serialization and selector matching would see a stale
document.
*/

// Remove detaches a node from its parent, on both trees. Removing an
// already detached node is a no-op.
func (dn *DomNode) Remove() {
	if dn == nil {
		return
	}
	if h := dn.htmlNode; h != nil && h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
	dn.Node.Isolate()
}

// Detach makes the tree walker remove DOM nodes through this payload,
// keeping the HTML mirror in sync (interface tree.NodeRemover).
func (dn *DomNode) Detach() {
	dn.Remove()
}

var _ tree.NodeRemover = &DomNode{}

// ReplaceWith exchanges this node for repl, keeping the sibling position.
// A repl that is still attached elsewhere is detached first.
func (dn *DomNode) ReplaceWith(repl *tree.Node[*DomNode]) error {
	if dn == nil || Node(repl) == nil {
		return ErrNoNode
	}
	parent := dn.Node.Parent()
	if parent == nil {
		return ErrNotAttached
	}
	rn := Node(repl)
	if rn.Node.HasParent() {
		rn.Remove()
	}
	slot := dn.Node.SiblingIndex()
	if h := dn.htmlNode; h != nil && h.Parent != nil {
		if rn.htmlNode != nil {
			h.Parent.InsertBefore(rn.htmlNode, h)
		}
		h.Parent.RemoveChild(h)
	}
	parent.ReplaceChild(slot, repl)
	return nil
}

// Unwrap removes this node from the tree, but keeps its children in place:
// they are inserted into the parent at the node's position, preserving
// document order.
func (dn *DomNode) Unwrap() error {
	if dn == nil {
		return ErrNoNode
	}
	parent := dn.Node.Parent()
	if parent == nil {
		return ErrNotAttached
	}
	slot := dn.Node.SiblingIndex()
	children := dn.Node.Children()
	if h := dn.htmlNode; h != nil && h.Parent != nil {
		hp := h.Parent
		for _, ch := range children {
			if chh := Node(ch).htmlNode; chh != nil {
				h.RemoveChild(chh)
				hp.InsertBefore(chh, h)
			}
		}
		hp.RemoveChild(h)
	}
	for i, ch := range children {
		ch.Isolate()
		parent.InsertChildAt(slot+i, ch)
	}
	dn.Node.Isolate()
	return nil
}

// AppendChild appends ch as the last child of this node, on both trees.
// A ch that is still attached elsewhere is detached first.
func (dn *DomNode) AppendChild(ch *tree.Node[*DomNode]) error {
	cn := Node(ch)
	if dn == nil || cn == nil {
		return ErrNoNode
	}
	if cn.Node.HasParent() {
		cn.Remove()
	}
	if dn.htmlNode != nil && cn.htmlNode != nil {
		dn.htmlNode.AppendChild(cn.htmlNode)
	}
	dn.Node.AddChild(ch)
	return nil
}

// --- Serialization -----------------------------------------------------

// OuterHTML serializes a node and its descendants to HTML.
func OuterHTML(n *tree.Node[*DomNode]) (string, error) {
	dn := Node(n)
	if dn == nil || dn.htmlNode == nil {
		return "", ErrNoNode
	}
	var sb strings.Builder
	if err := html.Render(&sb, dn.htmlNode); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// InnerHTML serializes the children of a node to HTML.
func InnerHTML(n *tree.Node[*DomNode]) (string, error) {
	dn := Node(n)
	if dn == nil {
		return "", ErrNoNode
	}
	var sb strings.Builder
	for _, ch := range n.Children() {
		if chh := Node(ch).htmlNode; chh != nil {
			if err := html.Render(&sb, chh); err != nil {
				return "", err
			}
		}
	}
	return sb.String(), nil
}

// --- Text content ------------------------------------------------------

// textCollector concatenates the data of all text nodes in document order.
type textCollector struct {
	sb strings.Builder
}

func (tc *textCollector) OnEnter(n *tree.Node[*DomNode], depth int) error {
	if dn := Node(n); dn.IsText() {
		tc.sb.WriteString(dn.htmlNode.Data)
	}
	return nil
}

func (tc *textCollector) OnExit(n *tree.Node[*DomNode], depth int) error {
	return nil
}

// TextContent returns the concatenated text of a node and all of its
// descendants, in document order.
func TextContent(n *tree.Node[*DomNode]) (string, error) {
	if n == nil {
		return "", ErrNoNode
	}
	tc := &textCollector{}
	if err := tree.Traverse(tc, n); err != nil {
		return "", err
	}
	return tc.sb.String(), nil
}
