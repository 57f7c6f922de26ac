/*
Package dom implements a document object model for HTML.

Overview

The DOM is built on top of a general purpose tree type (package tree),
with every tree node carrying a DomNode payload that wraps a node of an
HTML parse tree (golang.org/x/net/html). Parsing is done by the x/net
parser; this package mirrors the parse tree and keeps the mirror in sync
when nodes are removed, replaced or unwrapped, so that serialization and
CSS-selector matching always see the current document.

In a fully object oriented programming language we would subclass a base
node type for the DOM, but in Go we resort to composition, thus including
a generic tree node in every DOM node. The downside of this approach is
that we need an adapter (function Node) to get from the generic tree node
back to the DOM payload.

Querying is split between two collaborators: an Evaluator is an opaque
predicate for a compiled selector (package css provides one backed by
cascadia), and the Collector functions Collect and FindFirst drive the
tree walker with an Evaluator to gather matches in document order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dcsoup.dom'.
func tracer() tracing.Trace {
	return tracing.Select("dcsoup.dom")
}
