package dialect

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/billybjork/blockdown/engine/block"
)

// A trailing caption paragraph immediately follows a block's primary
// markup. The prefix match is greedy, so of several caption-looking
// paragraphs only the last one is treated as caption syntax.
var captionPattern = regexp.MustCompile(
	`(?s)^(.*)<p class="media-caption">(.*?)</p>\s*$`)

// extractCaption splits a trailing caption paragraph off a chunk. The
// caption text comes back entity-decoded; the remainder is the chunk
// without the caption, trimmed.
func extractCaption(chunk string) (caption, remainder string, ok bool) {
	m := captionPattern.FindStringSubmatch(chunk)
	if m == nil {
		return "", "", false
	}
	return html.UnescapeString(m[2]), strings.TrimSpace(m[1]), true
}

// withCaption attaches a caption to a block if its variant is
// caption-capable. The second return value reports whether the caption
// found a home.
func withCaption(b block.Block, caption string) (block.Block, bool) {
	switch x := b.(type) {
	case block.Image:
		x.Caption = caption
		return x, true
	case block.Video:
		x.Caption = caption
		return x, true
	case block.HTML:
		x.Caption = caption
		return x, true
	}
	return b, false
}
