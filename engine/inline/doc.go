/*
Package inline resolves overlapping emphasis markers inside a text run
into a nested formatting tree.

A run is the text content of one block. The formatter recognizes a fixed,
ordered set of markers — inline code, HTML underline/strong/em/code tags,
and markdown strong/strike/em — with earliest-starting-match-wins
semantics and matcher priority as the tie breaker. Link syntax is handled
in a preceding pass over the whole run, with target sanitization; a target
that fails sanitization leaves the source text untouched.

Recursion into marker content carries an explicit depth counter and stops
at depth 8, so adversarial input (thousands of nested asterisks) always
terminates in a plain node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockdown.inline'.
func tracer() tracing.Trace {
	return tracing.Select("blockdown.inline")
}
