package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidVisitor is thrown if a traversal is started without a visitor.
var ErrInvalidVisitor = errors.New("visitor is invalid")

// ErrInvalidFilter is thrown if a filter traversal is started without a filter.
var ErrInvalidFilter = errors.New("filter is invalid")

// ErrEmptyTree is thrown if a traversal is called on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrBadStructure is thrown if a callback left the tree in a state the
// engine cannot reconcile, e.g. a parent whose child list no longer holds
// the slot the engine recorded. We abort rather than guess.
var ErrBadStructure = errors.New("tree structure changed inconsistently during walk")

// Visitor is the callback contract for unconditional traversals.
// OnEnter is called for a node before any of its children are visited,
// OnExit after all of them have been. The root receives both calls.
//
// A visitor may remove or replace the currently visited node from within
// OnEnter; the engine re-derives its position afterwards. At most one
// structural change of one kind per call is supported — removing a node
// and simultaneously inserting elsewhere leaves the walk undefined.
//
// A non-nil error aborts the walk and is returned to the caller.
type Visitor[T comparable] interface {
	OnEnter(node *Node[T], depth int) error
	OnExit(node *Node[T], depth int) error
}

// FilterAction is the control signal a NodeFilter returns at each visit.
// It governs the very next step of the walk only.
type FilterAction int8

const (
	ActionContinue     FilterAction = iota // proceed, descending into children
	ActionSkipChildren                     // proceed, but do not descend
	ActionRemove                           // remove this node, then proceed
	ActionStop                             // abort the walk immediately
)

func (a FilterAction) String() string {
	switch a {
	case ActionContinue:
		return "Continue"
	case ActionSkipChildren:
		return "SkipChildren"
	case ActionRemove:
		return "Remove"
	case ActionStop:
		return "Stop"
	}
	return "FilterAction(?)"
}

// NodeFilter is the callback contract for filter traversals. The action
// returned by OnEnter steers descent, the one returned by OnExit steers
// ascent. The same mutation contract as for Visitor applies.
type NodeFilter[T comparable] interface {
	OnEnter(node *Node[T], depth int) (FilterAction, error)
	OnExit(node *Node[T], depth int) (FilterAction, error)
}

// NodeRemover is implemented by payloads which mirror the tree structure
// in an external data structure. When a filter requests removal the engine
// then detaches nodes through the payload, keeping the mirror in sync.
// Payloads without this interface are removed with Isolate.
type NodeRemover interface {
	Detach()
}

func removeNode[T comparable](node *Node[T]) {
	if r, ok := any(node.Payload).(NodeRemover); ok {
		r.Detach()
		return
	}
	node.Isolate()
}

// Traverse visits every node of the subtree rooted at root, in document
// order, without recursing. visitor.OnEnter fires before a node's children
// are visited, visitor.OnExit after; root starts at depth 0.
//
// The engine re-validates the current node's links after every OnEnter
// call, because the callback may have removed or replaced the node:
// a replaced slot is resumed with its new occupant (which is not entered
// again, but whose children are visited), a removed node is skipped in
// favour of its recorded next sibling, or of the parent's exit phase when
// it was the last child.
func Traverse[T comparable](visitor Visitor[T], root *Node[T]) error {
	if visitor == nil {
		return ErrInvalidVisitor
	}
	if root == nil {
		return ErrEmptyTree
	}
	tracer().Debugf("tree walk starts at %v", root)
	node := root
	depth := 0
	for node != nil {
		parent := node.Parent() // remember the links OnEnter may sever
		origCount := 0
		if parent != nil {
			origCount = parent.ChildCount()
		}
		next := node.NextSibling()
		slot := node.SiblingIndex()
		if err := visitor.OnEnter(node, depth); err != nil {
			return err
		}
		descend := true
		if parent != nil && !node.HasParent() { // OnEnter removed or replaced node
			if parent.ChildCount() == origCount {
				// replaced: the slot has a new occupant, resume there
				repl, ok := parent.Child(slot)
				if !ok {
					return ErrBadStructure
				}
				node = repl
			} else if next != nil {
				// removed: resume at the sibling recorded before the call
				node = next
				continue
			} else {
				// removed as last child: the parent's children are done
				node = parent
				depth--
				descend = false
			}
		}
		if descend && node.ChildCount() > 0 {
			node, _ = node.Child(0)
			depth++
			continue
		}
		for node.NextSibling() == nil && depth > 0 {
			if err := visitor.OnExit(node, depth); err != nil {
				return err
			}
			node = node.Parent()
			depth--
			if node == nil {
				return ErrBadStructure
			}
		}
		if err := visitor.OnExit(node, depth); err != nil {
			return err
		}
		if node == root {
			break
		}
		node = node.NextSibling()
	}
	return nil
}

// FilterWith visits the subtree rooted at root like Traverse does, but
// lets the filter steer the walk: Stop aborts immediately, SkipChildren
// suppresses descent, and Remove prunes the visited node from the tree.
//
// Removal is deferred until the engine has captured the next cursor
// position (the next sibling, or the parent when ascending). Removing
// first would orphan the node and corrupt the walk's own bookkeeping;
// reading "next" before removing is the only safe order.
//
// The returned action reports how the root's own visit concluded.
func FilterWith[T comparable](filter NodeFilter[T], root *Node[T]) (FilterAction, error) {
	if filter == nil {
		return ActionStop, ErrInvalidFilter
	}
	if root == nil {
		return ActionStop, ErrEmptyTree
	}
	node := root
	depth := 0
	action := ActionContinue
	for node != nil {
		var err error
		if action, err = filter.OnEnter(node, depth); err != nil {
			return action, err
		}
		if action == ActionStop {
			return ActionStop, nil
		}
		if action == ActionContinue && node.ChildCount() > 0 {
			node, _ = node.Child(0)
			depth++
			continue
		}
		for node.NextSibling() == nil && depth > 0 {
			if action == ActionContinue || action == ActionSkipChildren {
				if action, err = filter.OnExit(node, depth); err != nil {
					return action, err
				}
				if action == ActionStop {
					return ActionStop, nil
				}
			}
			prev := node
			node = node.Parent()
			depth--
			if node == nil {
				return ActionStop, ErrBadStructure
			}
			if action == ActionRemove {
				removeNode(prev) // remove only after the parent has been captured
			}
			action = ActionContinue // ascending never re-triggers removal
		}
		if action == ActionContinue || action == ActionSkipChildren {
			if action, err = filter.OnExit(node, depth); err != nil {
				return action, err
			}
			if action == ActionStop {
				return ActionStop, nil
			}
		}
		if node == root {
			return action, nil
		}
		prev := node
		node = node.NextSibling()
		if action == ActionRemove {
			removeNode(prev) // remove only after the sibling has been read
		}
		action = ActionContinue
	}
	return ActionContinue, nil
}
