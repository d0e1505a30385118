package dialect

import (
	"regexp"
	"strings"

	"github.com/billybjork/blockdown/engine/block"
)

// Dialect tokens. These are bit-exact; see the package documentation.
const (
	blockSeparator = "<!-- block -->"
	rowStart       = "<!-- row -->"
	rowEnd         = "<!-- /row -->"
	colSeparator   = "<!-- col -->"
	htmlStart      = "<!-- html -->"
	htmlEnd        = "<!-- /html -->"
	alignEnd       = "<!-- /align -->"
)

// The block separator must be flanked by at least one newline on each
// side; surrounding blank space is tolerated.
var blockSplitPattern = regexp.MustCompile(`\n\s*` + blockSeparator + `\s*\n`)

// ParseDocument splits persisted document text into an ordered block
// sequence. It never fails: an empty or whitespace-only document (and a
// split that produces no usable chunks) normalizes to a single empty,
// left-aligned text block — a document is never a zero-length sequence.
func ParseDocument(text string) []block.Block {
	if strings.TrimSpace(text) == "" {
		return []block.Block{emptyTextBlock()}
	}
	var blocks []block.Block
	for _, chunk := range blockSplitPattern.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		blocks = append(blocks, parseChunk(chunk))
	}
	if len(blocks) == 0 {
		return []block.Block{emptyTextBlock()}
	}
	return blocks
}

// parseChunk builds a row block when the chunk is row-bracketed and has
// at least two columns; everything else is leaf-classified. Row column
// text always goes through the leaf classifier, so rows cannot nest.
func parseChunk(chunk string) block.Block {
	if strings.HasPrefix(chunk, rowStart) && strings.HasSuffix(chunk, rowEnd) {
		interior := strings.TrimPrefix(chunk, rowStart)
		interior = strings.TrimSuffix(interior, rowEnd)
		columns := strings.Split(interior, colSeparator)
		if len(columns) >= 2 {
			if len(columns) > 2 {
				// Intentional truncation, kept from the original design.
				tracer().Infof("dialect: row has %d columns, dropping all but the first two",
					len(columns))
			}
			return block.Row{
				ID:    block.NewID(),
				Left:  Classify(columns[0]),
				Right: Classify(columns[1]),
			}
		}
		// Row markers without a column split do not make a row.
	}
	return Classify(chunk)
}

func emptyTextBlock() block.Block {
	return block.Text{ID: block.NewID(), Content: "", Align: block.AlignLeft}
}
