/*
Package blockdown is the top-level entry point of the blockdown engine: a
two-way mapping between documents persisted as markdown-plus-HTML-comment
text and the typed block tree an editor operates on.

The heavy lifting lives in the sub-packages — dialect (parse/serialize),
engine/block (the block model), engine/inline (run formatting) — and is
usable without this facade. The Engine bundles them behind a small API
with shared options.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package blockdown

import (
	"encoding/json"
	"net/url"

	"github.com/billybjork/blockdown/core"
	"github.com/billybjork/blockdown/dialect"
	"github.com/billybjork/blockdown/engine/block"
	"github.com/billybjork/blockdown/engine/inline"
)

// Engine is the top-level entry point for parsing, serializing and
// formatting blockdown documents. Engines are cheap and safe for
// concurrent use; all operations are pure functions over their input.
type Engine struct {
	linkBase *url.URL
}

// Option is the signature of engine configuration functions.
type Option func(*Engine)

// WithLinkBase sets the base URL scheme-less link targets resolve
// against — the origin of the site the documents belong to. Without a
// base, such targets fail sanitization and render as literal text.
func WithLinkBase(base *url.URL) Option {
	return func(e *Engine) {
		e.linkBase = base
	}
}

// New creates a new engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse parses persisted document text into an ordered block sequence.
// It never fails; see dialect.ParseDocument.
func (e *Engine) Parse(text string) []block.Block {
	return dialect.ParseDocument(text)
}

// Serialize renders a block sequence back to persisted text in canonical
// form.
func (e *Engine) Serialize(blocks []block.Block) string {
	return dialect.Serialize(blocks)
}

// Format normalizes document text: parse, then serialize canonically.
// Legacy hand-written markup comes out upgraded; canonical text passes
// through unchanged up to insignificant whitespace.
func (e *Engine) Format(text string) string {
	return dialect.Serialize(dialect.ParseDocument(text))
}

// FormatRun resolves the inline formatting of one text run, using the
// engine's link base for target sanitization.
func (e *Engine) FormatRun(run string) []inline.Node {
	return inline.Format(run, inline.Options{Base: e.linkBase})
}

// RenderJSON renders document text as an indented JSON block dump, with
// a "type" discriminator per block.
func (e *Engine) RenderJSON(text string) (string, error) {
	blocks := dialect.ParseDocument(text)
	out, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot encode blocks as JSON")
	}
	return string(out), nil
}
