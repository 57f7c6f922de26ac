/*
Package dcsoup is an HTML document-object-model library with CSS-selector
based querying and manipulation of parsed trees.

The heavy lifting is done by the sub-packages: package tree walks trees
iteratively and mutation-safely, package dom builds and manipulates HTML
document trees, package css compiles selectors and stylesheets. This
package is a thin front door for the common cases:

   doc, err := dcsoup.ParseString("<html>…</html>")
   links, err := dcsoup.Select("a[href]", doc)
   first, err := dcsoup.SelectFirst("p.lead", doc)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dcsoup

import (
	"io"

	"github.com/j4587698/dcsoup/css"
	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
)

// Parse reads HTML and returns the document node of the resulting DOM.
func Parse(r io.Reader) (*tree.Node[*dom.DomNode], error) {
	return dom.FromHTML(r)
}

// ParseString parses HTML from a string; see Parse.
func ParseString(s string) (*tree.Node[*dom.DomNode], error) {
	return dom.FromString(s)
}

// Select collects all elements below root matching a CSS selector
// expression, in document order.
func Select(query string, root *tree.Node[*dom.DomNode]) (dom.NodeSet, error) {
	return css.Select(query, root)
}

// SelectFirst returns the first element below root matching a CSS selector
// expression, or nil if nothing matches.
func SelectFirst(query string, root *tree.Node[*dom.DomNode]) (*tree.Node[*dom.DomNode], error) {
	return css.SelectFirst(query, root)
}
