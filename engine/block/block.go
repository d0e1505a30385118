package block

import (
	"github.com/google/uuid"
)

// Kind discriminates the block variants.
type Kind uint8

// Enum values for type Kind.
const (
	KindText Kind = iota + 1
	KindImage
	KindVideo
	KindCode
	KindHTML
	KindCallout
	KindDivider
	KindRow
)

var kindMap = map[Kind]string{
	KindText:    "text",
	KindImage:   "image",
	KindVideo:   "video",
	KindCode:    "code",
	KindHTML:    "html",
	KindCallout: "callout",
	KindDivider: "divider",
	KindRow:     "row",
}

var kindStringMap = map[string]Kind{
	"text":    KindText,
	"image":   KindImage,
	"video":   KindVideo,
	"code":    KindCode,
	"html":    KindHTML,
	"callout": KindCallout,
	"divider": KindDivider,
	"row":     KindRow,
}

func (k Kind) String() string {
	if s, ok := kindMap[k]; ok {
		return s
	}
	return "text"
}

// ParseKind parses a string to a block kind. It will never return an
// error, but rather KindText in case of illegal input.
func ParseKind(s string) Kind {
	if k, ok := kindStringMap[s]; ok {
		return k
	}
	return KindText
}

// CaptionCapable reports whether blocks of this kind may carry a trailing
// caption.
func (k Kind) CaptionCapable() bool {
	return k == KindImage || k == KindVideo || k == KindHTML
}

// Block is the tagged union over the content block variants. It is a
// closed interface; the variants of this package are its only
// implementations.
type Block interface {
	Kind() Kind
	BlockID() string
	isBlock()
}

// Text is a paragraph of (possibly inline-formatted) text.
type Text struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Align   Alignment `json:"align"`
}

// Image is an embedded image with an optional style and caption.
type Image struct {
	ID      string    `json:"id"`
	Src     string    `json:"src"`
	Alt     string    `json:"alt"`
	Style   string    `json:"style,omitempty"`
	Caption string    `json:"caption,omitempty"`
	Align   Alignment `json:"align"`
}

// Video is an embedded video with an optional poster, style and caption.
type Video struct {
	ID       string    `json:"id"`
	Src      string    `json:"src"`
	Poster   string    `json:"poster,omitempty"`
	Style    string    `json:"style,omitempty"`
	Caption  string    `json:"caption,omitempty"`
	Align    Alignment `json:"align"`
	Autoplay bool      `json:"autoplay"`
}

// Code is a fenced code block. Its content is verbatim and is never run
// through inline formatting.
type Code struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Language string `json:"language"`
}

// HTML is a raw markup block. Its content is trusted, author-provided
// markup and is replayed without escaping.
type HTML struct {
	ID      string    `json:"id"`
	HTML    string    `json:"html"`
	Style   string    `json:"style,omitempty"`
	Caption string    `json:"caption,omitempty"`
	Align   Alignment `json:"align"`
}

// Callout is a highlighted text box. Like HTML, its content is trusted.
type Callout struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Align   Alignment `json:"align"`
}

// Divider is a horizontal rule. It has no fields besides its ID.
type Divider struct {
	ID string `json:"id"`
}

// Row places exactly two leaf blocks side by side. Row children are never
// themselves rows; the parser enforces this by construction.
type Row struct {
	ID    string `json:"id"`
	Left  Block  `json:"left"`
	Right Block  `json:"right"`
}

func (Text) Kind() Kind { return KindText }
func (Image) Kind() Kind { return KindImage }
func (Video) Kind() Kind { return KindVideo }
func (Code) Kind() Kind { return KindCode }
func (HTML) Kind() Kind { return KindHTML }
func (Callout) Kind() Kind { return KindCallout }
func (Divider) Kind() Kind { return KindDivider }
func (Row) Kind() Kind { return KindRow }

// BlockID returns the block's opaque identity.
func (t Text) BlockID() string { return t.ID }
func (i Image) BlockID() string { return i.ID }
func (v Video) BlockID() string { return v.ID }
func (c Code) BlockID() string { return c.ID }
func (h HTML) BlockID() string { return h.ID }
func (c Callout) BlockID() string { return c.ID }
func (d Divider) BlockID() string { return d.ID }
func (r Row) BlockID() string { return r.ID }

func (Text) isBlock() {}
func (Image) isBlock() {}
func (Video) isBlock() {}
func (Code) isBlock() {}
func (HTML) isBlock() {}
func (Callout) isBlock() {}
func (Divider) isBlock() {}
func (Row) isBlock() {}

// NewID creates a fresh, globally-unique block ID. IDs are opaque to the
// dialect: they are never serialized into, nor parsed from, document text.
func NewID() string {
	return uuid.NewString()
}

// New creates a block of the given kind with per-variant defaults and a
// fresh ID. A new row recursively creates two empty text children.
func New(kind Kind) Block {
	switch kind {
	case KindImage:
		return Image{ID: NewID()}
	case KindVideo:
		return Video{ID: NewID()}
	case KindCode:
		return Code{ID: NewID(), Language: "text"}
	case KindHTML:
		return HTML{ID: NewID()}
	case KindCallout:
		return Callout{ID: NewID()}
	case KindDivider:
		return Divider{ID: NewID()}
	case KindRow:
		return Row{ID: NewID(), Left: New(KindText), Right: New(KindText)}
	}
	return Text{ID: NewID()}
}

// Equal compares two blocks field-for-field, ignoring IDs. Rows compare
// their children recursively.
func Equal(a, b Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Text:
		y := b.(Text)
		return x.Content == y.Content && x.Align == y.Align
	case Image:
		y := b.(Image)
		return x.Src == y.Src && x.Alt == y.Alt && x.Style == y.Style &&
			x.Caption == y.Caption && x.Align == y.Align
	case Video:
		y := b.(Video)
		return x.Src == y.Src && x.Poster == y.Poster && x.Style == y.Style &&
			x.Caption == y.Caption && x.Align == y.Align && x.Autoplay == y.Autoplay
	case Code:
		y := b.(Code)
		return x.Code == y.Code && x.Language == y.Language
	case HTML:
		y := b.(HTML)
		return x.HTML == y.HTML && x.Style == y.Style &&
			x.Caption == y.Caption && x.Align == y.Align
	case Callout:
		y := b.(Callout)
		return x.Content == y.Content && x.Align == y.Align
	case Divider:
		return true
	case Row:
		y := b.(Row)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// EqualSequence compares two block sequences with Equal, element by
// element.
func EqualSequence(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
