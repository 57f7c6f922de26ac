package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/j4587698/dcsoup/tree"
)

// NodeSet is an ordered collection of DOM nodes, usually the result of a
// Collect call. Operations on a NodeSet treat every member independently,
// in the set's order.
type NodeSet []*tree.Node[*DomNode]

// First returns the first node of the set, or nil for an empty set.
func (set NodeSet) First() *tree.Node[*DomNode] {
	if len(set) == 0 {
		return nil
	}
	return set[0]
}

// Traverse visits every descendant of every node in the set; see
// tree.Traverse.
func (set NodeSet) Traverse(visitor tree.Visitor[*DomNode]) error {
	for _, n := range set {
		if err := tree.Traverse(visitor, n); err != nil {
			return err
		}
	}
	return nil
}

// FilterWith runs a filter traversal over every node in the set; see
// tree.FilterWith. A Stop returned by any individual walk short-circuits
// the remaining members of the set.
func (set NodeSet) FilterWith(filter tree.NodeFilter[*DomNode]) (tree.FilterAction, error) {
	action := tree.ActionContinue
	for _, n := range set {
		var err error
		if action, err = tree.FilterWith(filter, n); err != nil {
			return action, err
		}
		if action == tree.ActionStop {
			break
		}
	}
	return action, nil
}

// Filter returns the members of the set for which the evaluator matches,
// preserving order. Members are matched against themselves as root.
func (set NodeSet) Filter(eval Evaluator) NodeSet {
	if eval == nil {
		return nil
	}
	var out NodeSet
	for _, n := range set {
		if eval.Matches(n, n) {
			out = append(out, n)
		}
	}
	return out
}

// Not returns the members of the set for which the evaluator does not
// match, preserving order.
func (set NodeSet) Not(eval Evaluator) NodeSet {
	if eval == nil {
		return set
	}
	var out NodeSet
	for _, n := range set {
		if !eval.Matches(n, n) {
			out = append(out, n)
		}
	}
	return out
}

// Each calls fn on every member of the set, in order. The first error
// stops the iteration.
func (set NodeSet) Each(fn func(n *tree.Node[*DomNode]) error) error {
	for _, n := range set {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

// Remove detaches every member of the set from its tree.
func (set NodeSet) Remove() {
	for _, n := range set {
		Node(n).Remove()
	}
}
