/*
Package htmlpreview renders a block sequence to preview HTML.

This is the consuming side of the inline node-tree contract: text-bearing
blocks run through the inline formatter, and link nodes materialize their
external flag as new-tab/no-opener anchors. Block bodies of the HTML and
callout variants are trusted, author-provided markup and are replayed
without escaping.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmlpreview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockdown.render'.
func tracer() tracing.Trace {
	return tracing.Select("blockdown.render")
}
