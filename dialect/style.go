package dialect

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/billybjork/blockdown/core/attr"
	"github.com/billybjork/blockdown/engine/block"
)

// Media blocks (images, videos, raw markup) express alignment through
// margin declarations; text-bearing wrappers (callouts, legacy divs)
// through text-align. The two mappers are deliberately separate.

// mediaAlignmentFromStyle derives an alignment from a media style string.
// Centered media carries auto margins on both sides, right-aligned media
// an auto left margin. Hand-written float and text-align declarations are
// accepted as fallbacks.
func mediaAlignmentFromStyle(style string) block.Alignment {
	d := attr.ParseDeclarations(style)
	switch {
	case d.Is("margin-left", "auto") && d.Is("margin-right", "auto"):
		return block.AlignCenter
	case d.Is("margin-left", "auto"):
		return block.AlignRight
	case d.Is("float", "right"):
		return block.AlignRight
	}
	if ta, ok := d.Get("text-align"); ok {
		return block.ParseAlignment(strings.ToLower(ta))
	}
	return block.AlignLeft
}

// textAlignmentFromStyle maps a text-align declaration to an alignment.
// Any other declaration is ignored.
func textAlignmentFromStyle(style string) block.Alignment {
	d := attr.ParseDeclarations(style)
	if ta, ok := d.Get("text-align"); ok {
		return block.ParseAlignment(strings.ToLower(ta))
	}
	return block.AlignLeft
}

// canonicalMediaStyle rewrites a raw media style string to the canonical
// declaration list for the given alignment: alignment-related
// declarations are stripped and re-derived, everything else (width,
// max-width, …) is kept in order.
func canonicalMediaStyle(style string, align block.Alignment) string {
	d := attr.ParseDeclarations(style)
	d.Remove("float")
	d.Remove("display")
	d.Remove("margin-left")
	d.Remove("margin-right")
	d.Remove("text-align")
	switch align {
	case block.AlignCenter:
		d.Set("display", "block")
		d.Set("margin-left", "auto")
		d.Set("margin-right", "auto")
	case block.AlignRight:
		d.Set("display", "block")
		d.Set("margin-left", "auto")
		d.Set("margin-right", "0")
	}
	return d.String()
}

// styleHasWidth reports whether a style string constrains the width of a
// media block.
func styleHasWidth(style string) bool {
	d := attr.ParseDeclarations(style)
	return d.Has("width") || d.Has("max-width")
}

// --- DOM helpers -------------------------------------------------------

var (
	calloutSelector    = cascadia.MustCompile(`div.callout`)
	alignedDivSelector = cascadia.MustCompile(`div[style]`)
)

// firstElement parses a markup fragment in body context and returns its
// first element node, or nil if the fragment has none (or is not
// parseable at all).
func firstElement(fragment string) *html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		tracer().Debugf("dialect: fragment not parseable: %v", err)
		return nil
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// domAttr returns an attribute value from a parsed element, entity-decoded
// by the HTML parser. Missing attributes yield "".
func domAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// innerMarkup slices the verbatim inner markup out of a fragment wrapped
// in a single element: the text between the first '>' and the last
// closing tag. The DOM is used for detection only, so that author markup
// is replayed byte-for-byte.
func innerMarkup(fragment, closingTag string) (string, bool) {
	i := strings.IndexByte(fragment, '>')
	j := strings.LastIndex(fragment, closingTag)
	if i < 0 || j <= i {
		return "", false
	}
	if strings.TrimSpace(fragment[j+len(closingTag):]) != "" {
		return "", false
	}
	return fragment[i+1 : j], true
}

// legacyAlignWrapper detects the legacy centered/right wrapper form
//
//	<div style="text-align:center">…</div>
//
// and returns the alignment plus the verbatim inner markup. This is a
// back-compat read path; the serializer never produces it.
func legacyAlignWrapper(fragment string) (block.Alignment, string, bool) {
	s := strings.TrimSpace(fragment)
	if !strings.HasPrefix(strings.ToLower(s), "<div") {
		return block.AlignLeft, "", false
	}
	n := firstElement(s)
	if n == nil || n.Data != "div" || !alignedDivSelector(n) {
		return block.AlignLeft, "", false
	}
	align := textAlignmentFromStyle(domAttr(n, "style"))
	if align == block.AlignLeft {
		return block.AlignLeft, "", false
	}
	inner, ok := innerMarkup(s, "</div>")
	if !ok {
		return block.AlignLeft, "", false
	}
	return align, strings.TrimSpace(inner), true
}
