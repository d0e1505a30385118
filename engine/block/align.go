package block

// Alignment is an enum type for block alignment.
type Alignment uint8

// Enum values for type Alignment. AlignLeft is the zero value and the
// default wherever alignment markup is absent or unrecognized.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentMap = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

var alignmentStringMap = map[string]Alignment{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

func (a Alignment) String() string {
	if s, ok := alignmentMap[a]; ok {
		return s
	}
	return "left"
}

// ParseAlignment parses a string to an alignment. It will never return an
// error, but rather AlignLeft in case of illegal input.
func ParseAlignment(s string) Alignment {
	if a, ok := alignmentStringMap[s]; ok {
		return a
	}
	return AlignLeft
}
