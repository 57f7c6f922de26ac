/*
Package css connects the DOM to CSS selectors and stylesheets.

Overview

The selector grammar is not implemented here: compiled selectors are
provided by cascadia (https://godoc.org/github.com/andybalholm/cascadia),
wrapped into an evaluator the DOM's Collector understands. Stylesheet
parsing is provided by douceur. This package contributes the glue, plus
an option type for CSS dimension values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dcsoup.css'.
func tracer() tracing.Trace {
	return tracing.Select("dcsoup.css")
}
