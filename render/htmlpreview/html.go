package htmlpreview

import (
	"net/url"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"

	"github.com/billybjork/blockdown/engine/block"
	"github.com/billybjork/blockdown/engine/inline"
)

// Options control preview rendering.
type Options struct {
	// Base is handed to the inline formatter for link target resolution.
	Base *url.URL

	// CodeStyle names the chroma style for code block highlighting.
	// Empty selects "github".
	CodeStyle string
}

// Render renders a block sequence to preview HTML.
func Render(blocks []block.Block, opts Options) string {
	var b strings.Builder
	for _, blk := range blocks {
		renderBlock(&b, blk, opts)
		b.WriteString("\n")
	}
	return b.String()
}

func renderBlock(b *strings.Builder, blk block.Block, opts Options) {
	switch x := blk.(type) {
	case block.Text:
		b.WriteString(`<p` + alignStyle(x.Align) + `>`)
		renderNodes(b, inline.Format(x.Content, inline.Options{Base: opts.Base}))
		b.WriteString(`</p>`)
	case block.Image:
		b.WriteString(`<figure` + alignStyle(x.Align) + `><img src="` +
			html.EscapeString(x.Src) + `" alt="` + html.EscapeString(x.Alt) + `"`)
		if x.Style != "" {
			b.WriteString(` style="` + html.EscapeString(x.Style) + `"`)
		}
		b.WriteString(`>`)
		renderCaption(b, x.Caption)
		b.WriteString(`</figure>`)
	case block.Video:
		b.WriteString(`<figure` + alignStyle(x.Align) + `><video src="` +
			html.EscapeString(x.Src) + `"`)
		if x.Poster != "" {
			b.WriteString(` poster="` + html.EscapeString(x.Poster) + `"`)
		}
		if x.Autoplay {
			b.WriteString(` autoplay loop muted playsinline`)
		} else {
			b.WriteString(` controls`)
		}
		b.WriteString(`></video>`)
		renderCaption(b, x.Caption)
		b.WriteString(`</figure>`)
	case block.Code:
		renderCode(b, x, opts)
	case block.HTML:
		// Trusted author markup, replayed verbatim.
		b.WriteString(x.HTML)
		renderCaption(b, x.Caption)
	case block.Callout:
		b.WriteString(`<div class="callout"` + alignStyle(x.Align) + `>`)
		renderNodes(b, inline.Format(x.Content, inline.Options{Base: opts.Base}))
		b.WriteString(`</div>`)
	case block.Divider:
		b.WriteString(`<hr>`)
	case block.Row:
		b.WriteString(`<div class="row"><div class="col">`)
		renderBlock(b, x.Left, opts)
		b.WriteString(`</div><div class="col">`)
		renderBlock(b, x.Right, opts)
		b.WriteString(`</div></div>`)
	}
}

func alignStyle(a block.Alignment) string {
	if a == block.AlignLeft {
		return ""
	}
	return ` style="text-align: ` + a.String() + `"`
}

func renderCaption(b *strings.Builder, caption string) {
	if caption == "" {
		return
	}
	b.WriteString(`<figcaption class="media-caption">` + html.EscapeString(caption) + `</figcaption>`)
}

// renderNodes writes a formatting tree as HTML. Plain and code text is
// written as-is: run content is trusted in this dialect, and inline code
// is verbatim by contract.
func renderNodes(b *strings.Builder, nodes []inline.Node) {
	for _, n := range nodes {
		switch n.Kind {
		case inline.Plain:
			b.WriteString(n.Text)
		case inline.Code:
			b.WriteString(`<code>` + n.Text + `</code>`)
		case inline.Link:
			b.WriteString(`<a href="` + html.EscapeString(n.Href) + `"`)
			if n.External {
				b.WriteString(` target="_blank" rel="noopener noreferrer"`)
			}
			b.WriteString(`>`)
			renderNodes(b, n.Children)
			b.WriteString(`</a>`)
		default:
			tag := inlineTag(n.Kind)
			b.WriteString(`<` + tag + `>`)
			renderNodes(b, n.Children)
			b.WriteString(`</` + tag + `>`)
		}
	}
}

func inlineTag(k inline.NodeKind) string {
	switch k {
	case inline.Strong:
		return "strong"
	case inline.Em:
		return "em"
	case inline.Underline:
		return "u"
	case inline.Strike:
		return "s"
	}
	return "span"
}

// renderCode highlights a code block with chroma, falling back to an
// escaped <pre> block when the content cannot be tokenized.
func renderCode(b *strings.Builder, c block.Code, opts Options) {
	lexer := lexers.Get(c.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	styleName := opts.CodeStyle
	if styleName == "" {
		styleName = "github"
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	iterator, err := lexer.Tokenise(nil, c.Code)
	if err == nil {
		var highlighted strings.Builder
		formatter := chromahtml.New()
		if err = formatter.Format(&highlighted, style, iterator); err == nil {
			b.WriteString(highlighted.String())
			return
		}
	}
	tracer().Infof("render: highlighting %q failed, falling back to plain: %v", c.Language, err)
	b.WriteString(`<pre><code class="language-` + html.EscapeString(c.Language) + `">` +
		html.EscapeString(c.Code) + `</code></pre>`)
}
