package inline

import (
	"net/url"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("just text", Options{})
	assert.Equal(t, []Node{{Kind: Plain, Text: "just text"}}, nodes)
	assert.Empty(t, Format("", Options{}))
}

func TestFormatEmphasisVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	cases := []struct {
		run  string
		kind NodeKind
	}{
		{"**a**", Strong},
		{"__a__", Strong},
		{"<strong>a</strong>", Strong},
		{"<b>a</b>", Strong},
		{"*a*", Em},
		{"_a_", Em},
		{"<em>a</em>", Em},
		{"<i>a</i>", Em},
		{"<u>a</u>", Underline},
		{"~~a~~", Strike},
	}
	for _, c := range cases {
		nodes := Format(c.run, Options{})
		assert.Len(t, nodes, 1, c.run)
		assert.Equal(t, c.kind, nodes[0].Kind, c.run)
		assert.Equal(t, []Node{{Kind: Plain, Text: "a"}}, nodes[0].Children, c.run)
	}
}

func TestFormatCodeVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("run `**not bold**` here", Options{})
	assert.Equal(t, []Node{
		{Kind: Plain, Text: "run "},
		{Kind: Code, Text: "**not bold**"},
		{Kind: Plain, Text: " here"},
	}, nodes)
	//
	nodes = Format("<code>*x*</code>", Options{})
	assert.Equal(t, []Node{{Kind: Code, Text: "*x*"}}, nodes)
}

func TestFormatNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("**a *b* c**", Options{})
	assert.Equal(t, []Node{
		{Kind: Strong, Children: []Node{
			{Kind: Plain, Text: "a "},
			{Kind: Em, Children: []Node{{Kind: Plain, Text: "b"}}},
			{Kind: Plain, Text: " c"},
		}},
	}, nodes)
}

func TestFormatEarliestStartWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	// the underline tag starts before the double-asterisk run
	nodes := Format("<u>x</u> **y**", Options{})
	assert.Len(t, nodes, 3)
	assert.Equal(t, Underline, nodes[0].Kind)
	assert.Equal(t, Strong, nodes[2].Kind)
}

func TestFormatMarkersDoNotCrossNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("*a\nb*", Options{})
	assert.Equal(t, []Node{{Kind: Plain, Text: "*a\nb*"}}, nodes)
	nodes = Format("`a\nb`", Options{})
	assert.Equal(t, []Node{{Kind: Plain, Text: "`a\nb`"}}, nodes)
}

func TestFormatDepthBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	// eight distinct markers nest to the recursion bound; the ninth is
	// left unexpanded as literal text
	run := "<u><strong><b><em><i>**__~~*y*~~__**</i></em></b></strong></u>"
	nodes := Format(run, Options{})
	depth := 0
	n := nodes
	for len(n) == 1 && n[0].Kind != Plain {
		depth++
		n = n[0].Children
	}
	assert.Equal(t, maxDepth, depth)
	assert.Equal(t, []Node{{Kind: Plain, Text: "*y*"}}, n)
}

func TestFormatLinkInternal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("see [about](/about) page", Options{})
	assert.Equal(t, []Node{
		{Kind: Plain, Text: "see "},
		{Kind: Link, Href: "/about", Children: []Node{{Kind: Plain, Text: "about"}}},
		{Kind: Plain, Text: " page"},
	}, nodes)
}

func TestFormatLinkExternal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("[x](https://example.com/a)", Options{})
	assert.Len(t, nodes, 1)
	assert.Equal(t, Link, nodes[0].Kind)
	assert.Equal(t, "https://example.com/a", nodes[0].Href)
	assert.True(t, nodes[0].External)
}

func TestFormatLinkBaseResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	base, _ := url.Parse("https://example.com/")
	nodes := Format("[x](example.org/a)", Options{Base: base})
	assert.Len(t, nodes, 1)
	assert.Equal(t, Link, nodes[0].Kind)
	assert.Equal(t, "https://example.com/example.org/a", nodes[0].Href)
	assert.True(t, nodes[0].External)
	//
	// without a base, the scheme-less target is rejected and stays literal
	nodes = Format("[x](example.org/a)", Options{})
	assert.Equal(t, []Node{{Kind: Plain, Text: "[x](example.org/a)"}}, nodes)
}

func TestFormatLinkRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("[x](javascript:alert(1))", Options{})
	var b strings.Builder
	for _, n := range nodes {
		assert.Equal(t, Plain, n.Kind)
		b.WriteString(n.Text)
	}
	assert.Equal(t, "[x](javascript:alert(1))", b.String())
}

func TestFormatLinkLabelFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	nodes := Format("[**x**](#top)", Options{})
	assert.Len(t, nodes, 1)
	assert.Equal(t, Link, nodes[0].Kind)
	assert.False(t, nodes[0].External)
	assert.Equal(t, []Node{
		{Kind: Strong, Children: []Node{{Kind: Plain, Text: "x"}}},
	}, nodes[0].Children)
}

func TestIsInternal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	assert.True(t, IsInternal("#anchor"))
	assert.True(t, IsInternal("/posts/1"))
	assert.True(t, IsInternal("./sibling"))
	assert.True(t, IsInternal("../parent"))
	assert.False(t, IsInternal("https://example.com"))
	assert.False(t, IsInternal("mailto:a@b.c"))
}

func TestSanitizeURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.inline")
	defer teardown()
	//
	href, ok := SanitizeURL("  /about ", nil)
	assert.True(t, ok)
	assert.Equal(t, "/about", href)
	//
	href, ok = SanitizeURL("mailto:a@b.c", nil)
	assert.True(t, ok)
	assert.Equal(t, "mailto:a@b.c", href)
	//
	_, ok = SanitizeURL("javascript:alert(1)", nil)
	assert.False(t, ok)
	_, ok = SanitizeURL("ftp://example.com/f", nil)
	assert.False(t, ok)
	_, ok = SanitizeURL("http://%zz", nil)
	assert.False(t, ok)
}
