/*
Package dialect implements the persisted document dialect: a
markdown-plus-HTML-comment text form for typed content blocks.

Parsing and serialization are inverse operations over the canonical form:
any block sequence produced by ParseDocument from serializer output
re-serializes to the same text, and legacy, hand-written markup (centered
div wrappers and the like) normalizes to the canonical form on the first
save. Classification is total — an unrecognized chunk degrades to a plain
left-aligned text block, never to an error.

The dialect's tokens are bit-exact:

	<!-- block -->                      block separator
	<!-- row --> … <!-- /row -->        two-column row, columns split by <!-- col -->
	<!-- html --> … <!-- /html -->      raw markup block, optional style="…" on the start marker
	<!-- align:center --> … <!-- /align -->   text alignment pair (also align:right)
	<p class="media-caption">…</p>      trailing caption paragraph

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dialect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockdown.dialect'.
func tracer() tracing.Trace {
	return tracing.Select("blockdown.dialect")
}
