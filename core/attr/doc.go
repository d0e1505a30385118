/*
Package attr implements micro-parsers for CSS declaration lists and
HTML-attribute-style fragments.

Both parsers are total: illegal input never produces an error, it produces
an empty result. Callers treat a missing key/attribute as "absent" and fall
back to their defaults.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockdown.core'.
func tracer() tracing.Trace {
	return tracing.Select("blockdown.core")
}
