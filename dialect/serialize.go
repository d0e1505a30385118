package dialect

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/billybjork/blockdown/engine/block"
)

// Serialize renders a block sequence to the persisted text form, joining
// blocks with the block separator surrounded by blank lines. The output
// is the canonical form: parsing it back yields a field-for-field
// equivalent sequence (IDs aside), and serializing that parse reproduces
// the text.
func Serialize(blocks []block.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, SerializeBlock(b))
	}
	return strings.Join(parts, "\n\n"+blockSeparator+"\n\n")
}

// SerializeBlock renders one block to the dialect, applying
// legacy-format upgrades: blocks read from older hand-written markup come
// out in canonical form.
func SerializeBlock(b block.Block) string {
	switch x := b.(type) {
	case block.Text:
		return serializeText(x)
	case block.Image:
		return serializeImage(x)
	case block.Video:
		return serializeVideo(x)
	case block.Code:
		return "```" + x.Language + "\n" + x.Code + "\n```"
	case block.HTML:
		return serializeHTML(x)
	case block.Callout:
		return serializeCallout(x)
	case block.Divider:
		return "---"
	case block.Row:
		return rowStart + "\n" + SerializeBlock(x.Left) + "\n" + colSeparator + "\n" +
			SerializeBlock(x.Right) + "\n" + rowEnd
	}
	tracer().Errorf("dialect: cannot serialize unknown block %T", b)
	return ""
}

func serializeText(t block.Text) string {
	if t.Align == block.AlignLeft {
		return t.Content
	}
	return "<!-- align:" + t.Align.String() + " -->\n" + t.Content + "\n" + alignEnd
}

func serializeImage(i block.Image) string {
	var out string
	if i.Align != block.AlignLeft || styleHasWidth(i.Style) {
		out = `<img src="` + html.EscapeString(i.Src) + `" alt="` + html.EscapeString(i.Alt) + `"`
		if style := canonicalMediaStyle(i.Style, i.Align); style != "" {
			out += ` style="` + html.EscapeString(style) + `"`
		}
		out += ">"
	} else {
		out = "![" + i.Alt + "](" + i.Src + ")"
	}
	return out + captionSuffix(i.Caption)
}

func serializeVideo(v block.Video) string {
	out := `<video src="` + html.EscapeString(v.Src) + `"`
	if v.Poster != "" {
		out += ` poster="` + html.EscapeString(v.Poster) + `"`
	}
	if v.Align != block.AlignLeft || styleHasWidth(v.Style) {
		if style := canonicalMediaStyle(v.Style, v.Align); style != "" {
			out += ` style="` + html.EscapeString(style) + `"`
		}
	}
	if v.Autoplay {
		out += " autoplay loop muted playsinline"
	} else {
		out += " controls"
	}
	out += "></video>"
	return out + captionSuffix(v.Caption)
}

func serializeHTML(h block.HTML) string {
	marker := htmlStart
	if style := canonicalMediaStyle(h.Style, h.Align); style != "" {
		marker = `<!-- html style="` + html.EscapeString(style) + `" -->`
	}
	return marker + "\n" + h.HTML + "\n" + htmlEnd + captionSuffix(h.Caption)
}

func serializeCallout(c block.Callout) string {
	open := `<div class="callout"`
	if c.Align != block.AlignLeft {
		open += ` style="text-align: ` + c.Align.String() + `"`
	}
	// Callout content is trusted, author-provided markup; it is replayed
	// verbatim, never re-escaped.
	return open + ">" + c.Content + "</div>"
}

func captionSuffix(caption string) string {
	if caption == "" {
		return ""
	}
	return "\n" + `<p class="media-caption">` + html.EscapeString(caption) + `</p>`
}
