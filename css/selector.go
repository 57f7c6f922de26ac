package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
)

// Selector is a compiled CSS selector, usable as a dom.Evaluator.
// Compiling is done by cascadia; a Selector carries no mutable state and
// is safe for repeated and concurrent matching.
type Selector struct {
	group  cascadia.SelectorGroup
	source string
}

var _ dom.Evaluator = &Selector{}

// CompileSelector compiles a CSS selector expression, e.g. "div > p.lead".
func CompileSelector(query string) (*Selector, error) {
	group, err := cascadia.ParseGroup(query)
	if err != nil {
		return nil, fmt.Errorf("cannot compile selector %q: %w", query, err)
	}
	return &Selector{group: group, source: query}, nil
}

// MustSelector compiles a CSS selector expression and panics if the
// expression is invalid. Intended for selector constants.
func MustSelector(query string) *Selector {
	sel, err := CompileSelector(query)
	if err != nil {
		panic(err)
	}
	return sel
}

// Matches tests a candidate node against the selector. Only element nodes
// can match.
//
// Interface dom.Evaluator
func (sel *Selector) Matches(root, candidate *tree.Node[*dom.DomNode]) bool {
	dn := dom.Node(candidate)
	if !dn.IsElement() {
		return false
	}
	_ = root // cascadia matches on absolute tree position
	return sel.group.Match(dn.HTMLNode())
}

func (sel *Selector) String() string {
	return sel.source
}

// Select compiles a selector expression and collects all matching elements
// below root, in document order.
func Select(query string, root *tree.Node[*dom.DomNode]) (dom.NodeSet, error) {
	sel, err := CompileSelector(query)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("select %q", query)
	return dom.Collect(sel, root)
}

// SelectFirst compiles a selector expression and returns the first matching
// element below root in document order, or nil if nothing matches.
func SelectFirst(query string, root *tree.Node[*dom.DomNode]) (*tree.Node[*dom.DomNode], error) {
	sel, err := CompileSelector(query)
	if err != nil {
		return nil, err
	}
	return dom.FindFirst(sel, root)
}
