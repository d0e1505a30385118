package blockdown

import (
	"net/url"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/billybjork/blockdown/engine/block"
	"github.com/billybjork/blockdown/engine/inline"
)

func TestEngineFormatNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.dialect")
	defer teardown()
	//
	e := New()
	legacy := "<div style=\"text-align: center\">Hello</div>\n\n<!-- block -->\n\n----"
	out := e.Format(legacy)
	assert.Equal(t, "<!-- align:center -->\nHello\n<!-- /align -->\n\n<!-- block -->\n\n---", out)
	// formatting is idempotent
	assert.Equal(t, out, e.Format(out))
}

func TestEngineParseSerialize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.dialect")
	defer teardown()
	//
	e := New()
	blocks := e.Parse("one\n\n<!-- block -->\n\n```go\nx\n```")
	assert.Len(t, blocks, 2)
	assert.Equal(t, block.KindCode, blocks[1].Kind())
	again := e.Parse(e.Serialize(blocks))
	assert.True(t, block.EqualSequence(blocks, again))
}

func TestEngineFormatRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	base, _ := url.Parse("https://example.com/")
	e := New(WithLinkBase(base))
	nodes := e.FormatRun("[x](page)")
	assert.Len(t, nodes, 1)
	assert.Equal(t, inline.Link, nodes[0].Kind)
	assert.Equal(t, "https://example.com/page", nodes[0].Href)
	//
	// without a base the same target is rejected
	nodes = New().FormatRun("[x](page)")
	assert.Equal(t, []inline.Node{{Kind: inline.Plain, Text: "[x](page)"}}, nodes)
}

func TestEngineRenderJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.dialect")
	defer teardown()
	//
	out, err := New().RenderJSON("![A](/a.jpg)")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, `"type": "image"`))
	assert.True(t, strings.Contains(out, `"src": "/a.jpg"`))
}
