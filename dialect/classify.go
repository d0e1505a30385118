package dialect

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/billybjork/blockdown/core/attr"
	"github.com/billybjork/blockdown/engine/block"
)

// A blockMatcher is one entry of the classification chain: a detector
// plus field extractor for a single block variant. Matchers are evaluated
// in fixed priority order; the first match wins. None of them can fail
// hard — a chunk no matcher recognizes degrades to a plain text block.
type blockMatcher struct {
	name     string
	classify func(chunk string) (block.Block, bool)
}

var blockMatchers = []blockMatcher{
	{"html", classifyHTML},
	{"code", classifyCode},
	{"image", classifyImage},
	{"video", classifyVideo},
	{"callout", classifyCallout},
	{"divider", classifyDivider},
	{"aligned-text", classifyAlignedText},
	{"legacy-div", classifyLegacyDiv},
}

// Classify determines the block variant of one raw text chunk and
// extracts its fields. It is a total function: unrecognized input yields
// a left-aligned text block carrying the chunk verbatim.
//
// A trailing caption paragraph is split off before classification and
// attached afterwards — but only if the classified variant can carry a
// caption. Otherwise the chunk is re-classified unstripped: a trailing
// paragraph that merely looks like a caption, on a variant that cannot
// hold one, is not caption syntax.
func Classify(chunk string) block.Block {
	chunk = strings.TrimSpace(chunk)
	if caption, remainder, ok := extractCaption(chunk); ok {
		b := runMatchers(remainder)
		if withCap, attached := withCaption(b, caption); attached {
			return withCap
		}
		tracer().Debugf("dialect: caption on %s block is not caption syntax", b.Kind())
	}
	return runMatchers(chunk)
}

func runMatchers(chunk string) block.Block {
	for _, m := range blockMatchers {
		if b, ok := m.classify(chunk); ok {
			return b
		}
	}
	return block.Text{ID: block.NewID(), Content: chunk, Align: block.AlignLeft}
}

// --- Html --------------------------------------------------------------

var htmlBlockPattern = regexp.MustCompile(
	`(?s)^<!-- html(?: style="([^"]*)")? -->\n?(.*?)\n?<!-- /html -->$`)

func classifyHTML(chunk string) (block.Block, bool) {
	m := htmlBlockPattern.FindStringSubmatch(chunk)
	if m == nil {
		return nil, false
	}
	style := html.UnescapeString(m[1])
	align := mediaAlignmentFromStyle(style)
	body := m[2]
	// Upgrade path: markup hand-centered with a legacy div wrapper wins
	// over the marker-derived alignment and is unwrapped on read.
	if legacyAlign, inner, ok := legacyAlignWrapper(body); ok {
		align = legacyAlign
		body = inner
	}
	return block.HTML{ID: block.NewID(), HTML: body, Style: style, Align: align}, true
}

// --- Code --------------------------------------------------------------

func classifyCode(chunk string) (block.Block, bool) {
	if !strings.HasPrefix(chunk, "```") {
		return nil, false
	}
	rest := chunk[3:]
	var info, body string
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		info, body = rest[:i], rest[i+1:]
	} else {
		info = rest
	}
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSuffix(body, "\n")
	language := "text"
	if fields := strings.Fields(info); len(fields) > 0 {
		language = fields[0]
	}
	return block.Code{ID: block.NewID(), Code: body, Language: language}, true
}

// --- Image -------------------------------------------------------------

var markdownImagePattern = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)$`)

func classifyImage(chunk string) (block.Block, bool) {
	if strings.HasPrefix(strings.ToLower(chunk), "<img") {
		style, _ := attr.Attribute(chunk, "style")
		style = html.UnescapeString(style)
		src, _ := attr.Attribute(chunk, "src")
		alt, _ := attr.Attribute(chunk, "alt")
		return block.Image{
			ID:    block.NewID(),
			Src:   html.UnescapeString(src),
			Alt:   html.UnescapeString(alt),
			Style: style,
			Align: mediaAlignmentFromStyle(style),
		}, true
	}
	if m := markdownImagePattern.FindStringSubmatch(chunk); m != nil {
		return block.Image{
			ID:    block.NewID(),
			Src:   m[2],
			Alt:   m[1],
			Align: block.AlignLeft,
		}, true
	}
	return nil, false
}

// --- Video -------------------------------------------------------------

var sourceTagPattern = regexp.MustCompile(`(?i)<source\b[^>]*>`)

func classifyVideo(chunk string) (block.Block, bool) {
	if !strings.HasPrefix(strings.ToLower(chunk), "<video") {
		return nil, false
	}
	openTag := chunk
	if i := strings.IndexByte(chunk, '>'); i >= 0 {
		openTag = chunk[:i+1]
	}
	src, _ := attr.Attribute(openTag, "src")
	if src == "" {
		// Fall back to a nested <source src="…">.
		if tag := sourceTagPattern.FindString(chunk); tag != "" {
			src, _ = attr.Attribute(tag, "src")
		}
	}
	poster, _ := attr.Attribute(openTag, "poster")
	style, _ := attr.Attribute(openTag, "style")
	style = html.UnescapeString(style)
	return block.Video{
		ID:       block.NewID(),
		Src:      html.UnescapeString(src),
		Poster:   html.UnescapeString(poster),
		Style:    style,
		Align:    mediaAlignmentFromStyle(style),
		Autoplay: attr.HasToken(openTag, "autoplay"),
	}, true
}

// --- Callout -----------------------------------------------------------

func classifyCallout(chunk string) (block.Block, bool) {
	if !strings.HasPrefix(chunk, `<div class="callout"`) {
		return nil, false
	}
	n := firstElement(chunk)
	if n == nil || !calloutSelector(n) {
		return nil, false
	}
	content, ok := innerMarkup(chunk, "</div>")
	if !ok {
		return nil, false
	}
	return block.Callout{
		ID:      block.NewID(),
		Content: content,
		Align:   textAlignmentFromStyle(domAttr(n, "style")),
	}, true
}

// --- Divider -----------------------------------------------------------

var dividerPattern = regexp.MustCompile(`^(?:\*{3,}|-{3,}|_{3,})$`)

func classifyDivider(chunk string) (block.Block, bool) {
	if !dividerPattern.MatchString(chunk) {
		return nil, false
	}
	return block.Divider{ID: block.NewID()}, true
}

// --- Text with paired alignment markers ---------------------------------

var alignedTextPattern = regexp.MustCompile(
	`(?s)^<!-- align:(center|right) -->\n?(.*?)\n?<!-- /align -->`)

func classifyAlignedText(chunk string) (block.Block, bool) {
	m := alignedTextPattern.FindStringSubmatch(chunk)
	if m == nil {
		return nil, false
	}
	return block.Text{
		ID:      block.NewID(),
		Content: m[2],
		Align:   block.ParseAlignment(m[1]),
	}, true
}

// --- Text in a legacy alignment div --------------------------------------

// Back-compat read path only; the serializer emits the paired-marker form.
func classifyLegacyDiv(chunk string) (block.Block, bool) {
	align, inner, ok := legacyAlignWrapper(chunk)
	if !ok {
		return nil, false
	}
	return block.Text{ID: block.NewID(), Content: inner, Align: align}, true
}
