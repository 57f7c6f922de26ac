package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/j4587698/dcsoup/tree"
)

// ErrInvalidEvaluator is thrown if a collecting operation is started
// without an evaluator.
var ErrInvalidEvaluator = errors.New("evaluator is invalid")

// Evaluator is a boolean predicate over candidate nodes, usually a
// compiled CSS selector (see package css). Matching is relative to a
// fixed root node. Evaluators are expected to be pure: repeated calls
// with the same arguments must agree and must not mutate the tree.
type Evaluator interface {
	Matches(root, candidate *tree.Node[*DomNode]) bool
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(root, candidate *tree.Node[*DomNode]) bool

// Matches calls f.
func (f EvaluatorFunc) Matches(root, candidate *tree.Node[*DomNode]) bool {
	return f(root, candidate)
}

// accumulator gathers all matching elements during a traversal.
type accumulator struct {
	root    *tree.Node[*DomNode]
	eval    Evaluator
	matches NodeSet
}

func (acc *accumulator) OnEnter(n *tree.Node[*DomNode], depth int) error {
	if Node(n).IsElement() && acc.eval.Matches(acc.root, n) {
		acc.matches = append(acc.matches, n)
	}
	return nil
}

func (acc *accumulator) OnExit(n *tree.Node[*DomNode], depth int) error {
	return nil
}

// Collect walks the subtree rooted at root and returns every element for
// which the evaluator matches, in document order, without duplicates.
// The tree is never mutated and the walk always runs to completion.
func Collect(eval Evaluator, root *tree.Node[*DomNode]) (NodeSet, error) {
	if eval == nil {
		return nil, ErrInvalidEvaluator
	}
	acc := &accumulator{root: root, eval: eval}
	if err := tree.Traverse(acc, root); err != nil {
		return nil, err
	}
	tracer().Debugf("collected %d matching elements", len(acc.matches))
	return acc.matches, nil
}

// firstFinder stops the walk at the first matching element.
type firstFinder struct {
	root  *tree.Node[*DomNode]
	eval  Evaluator
	match *tree.Node[*DomNode]
}

func (ff *firstFinder) OnEnter(n *tree.Node[*DomNode], depth int) (tree.FilterAction, error) {
	if Node(n).IsElement() && ff.eval.Matches(ff.root, n) {
		ff.match = n
		return tree.ActionStop, nil
	}
	return tree.ActionContinue, nil
}

func (ff *firstFinder) OnExit(n *tree.Node[*DomNode], depth int) (tree.FilterAction, error) {
	return tree.ActionContinue, nil
}

// FindFirst walks the subtree rooted at root and returns the first element,
// in document order, for which the evaluator matches. The walk short-circuits:
// no element after the match is tested. Returns nil if nothing matches.
func FindFirst(eval Evaluator, root *tree.Node[*DomNode]) (*tree.Node[*DomNode], error) {
	if eval == nil {
		return nil, ErrInvalidEvaluator
	}
	ff := &firstFinder{root: root, eval: eval}
	if _, err := tree.FilterWith(ff, root); err != nil {
		return nil, err
	}
	return ff.match, nil
}
