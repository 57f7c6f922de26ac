package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type
parameter T. Nodes maintain a slice of children.

Children are kept in document order: removing a child compacts the slice,
it never leaves a hole. The traversal engine (see traverse.go) relies on
this to re-derive sibling positions after a callback mutated the tree.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to this node's children.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// InsertChildAt inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// The child is set at a given position in relation to other children,
// shifting children at later positions.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// ReplaceChild exchanges the child at position i for a different node,
// keeping the sibling position. The old occupant is detached and returned,
// or nil if i is out of range.
//
// This operation is concurrency-safe.
func (node *Node[T]) ReplaceChild(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return nil
	}
	return node.children.replaceChild(i, ch, node)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// HasParent returns true if node is currently linked to a parent node.
func (node *Node[T]) HasParent() bool {
	return node != nil && node.parent != nil
}

// Isolate removes a node from its parent, compacting the parent's list of
// children. Isolating an already detached node is a no-op.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.children.length() <= n {
		return nil, false
	}
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if node.ChildCount() > 0 {
		children := node.Children()
		for i, child := range children {
			if ch == child {
				return i
			}
		}
	}
	return -1
}

// SiblingIndex returns the position of a node within its parent's list of
// children, or -1 for a node without parent.
func (node *Node[T]) SiblingIndex() int {
	if node == nil || node.parent == nil {
		return -1
	}
	return node.parent.IndexOfChild(node)
}

// NextSibling returns the node immediately following this node in its
// parent's list of children, or nil if node is the last child or detached.
func (node *Node[T]) NextSibling() *Node[T] {
	i := node.SiblingIndex()
	if i < 0 {
		return nil
	}
	sibling, _ := node.parent.Child(i + 1)
	return sibling
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) addChild(child *Node[T], parent *Node[T]) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) insertChildAt(i int, child *Node[T], parent *Node[T]) {
	if child == nil || i < 0 {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	if len(chs.slice) <= i {
		l := len(chs.slice)
		chs.slice = append(chs.slice, make([]*Node[T], i-l+1)...)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
	}
	chs.slice[i] = child
	child.parent = parent
}

func (chs *childrenSlice[T]) replaceChild(i int, child *Node[T], parent *Node[T]) *Node[T] {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		return nil
	}
	old := chs.slice[i]
	chs.slice[i] = child
	child.parent = parent
	if old != nil {
		old.parent = nil
	}
	return old
}

func (chs *childrenSlice[T]) remove(node *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	if chs.length() == 0 || n < 0 || n >= chs.length() {
		return nil
	}
	chs.RLock()
	defer chs.RUnlock()
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
