/*
Package tree implements a general purpose tree of mutable nodes, together
with an iterative traversal engine over such trees.

Trees of this kind are the backbone of DOMs: documents may be nested
thousands of levels deep, therefore the traversal engine never recurses.
It walks a tree with a plain (node, depth) cursor and constant auxiliary
state, in document order, and stays correct even when a visitor callback
removes or replaces the very node currently being visited.

Two traversal contracts are supported:

   Traverse(visitor, root)     // unconditional pre-/post-order visit
   FilterWith(filter, root)    // visit steered by filter actions

A filter answers every visit with one of Continue, SkipChildren, Remove or
Stop, and may prune nodes from the tree while the walk is in progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dcsoup.tree'.
func tracer() tracing.Trace {
	return tracing.Select("dcsoup.tree")
}
