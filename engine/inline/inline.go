package inline

import (
	"net/url"
	"regexp"
)

// NodeKind discriminates formatting node variants.
type NodeKind uint8

// Enum values for type NodeKind.
const (
	Plain NodeKind = iota
	Strong
	Em
	Underline
	Strike
	Code
	Link
)

var nodeKindMap = map[NodeKind]string{
	Plain:     "plain",
	Strong:    "strong",
	Em:        "em",
	Underline: "underline",
	Strike:    "strike",
	Code:      "code",
	Link:      "link",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindMap[k]; ok {
		return s
	}
	return "plain"
}

// Node is one node of the formatting tree. Plain and Code nodes carry
// text; all other kinds carry children. Link nodes additionally carry a
// sanitized target.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Children []Node   `json:"children,omitempty"`
	Href     string   `json:"href,omitempty"`
	External bool     `json:"external,omitempty"`
}

// Options control run formatting.
type Options struct {
	// Base is the resolution base for scheme-less link targets — the
	// "current origin" of the consuming application. With no base, a
	// scheme-less, non-internal target fails sanitization and is left as
	// literal text.
	Base *url.URL
}

// maxDepth bounds recursion into marker content. At the bound, remaining
// text is emitted as a single plain node.
const maxDepth = 8

// matcher is a single-purpose detector for one inline formatting
// construct. Matchers are evaluated as a fixed, ordered list: the
// earliest-starting match wins, and ties on the start index are broken by
// list position. Where the dialect requires opening and closing HTML tag
// names to agree, each tag name is its own matcher.
type matcher struct {
	kind     NodeKind
	pattern  *regexp.Regexp
	verbatim bool // content taken as-is, no recursion
}

var matchers = []matcher{
	{Code, regexp.MustCompile("`([^`\n]+)`"), true},
	{Underline, regexp.MustCompile(`(?is)<u>(.*?)</u>`), false},
	{Strong, regexp.MustCompile(`(?is)<strong>(.*?)</strong>`), false},
	{Strong, regexp.MustCompile(`(?is)<b>(.*?)</b>`), false},
	{Em, regexp.MustCompile(`(?is)<em>(.*?)</em>`), false},
	{Em, regexp.MustCompile(`(?is)<i>(.*?)</i>`), false},
	{Code, regexp.MustCompile(`(?is)<code>(.*?)</code>`), true},
	{Strong, regexp.MustCompile(`(?s)\*\*(.+?)\*\*`), false},
	{Strong, regexp.MustCompile(`(?s)__(.+?)__`), false},
	{Strike, regexp.MustCompile(`(?s)~~(.+?)~~`), false},
	{Em, regexp.MustCompile(`\*([^*\n]+)\*`), false},
	{Em, regexp.MustCompile(`_([^_\n]+)_`), false},
}

var linkPattern = regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\n]*)\)`)

// Format turns one text run into a formatting tree. It never fails; text
// without recognized markers yields a single plain node (or no nodes for
// an empty run).
//
// Links are resolved in a preceding pass over the whole run. A link whose
// target fails sanitization is emitted as the literal source substring,
// brackets included.
func Format(run string, opts Options) []Node {
	var nodes []Node
	rest := run
	for rest != "" {
		loc := linkPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			nodes = append(nodes, formatEmphasis(rest, 0)...)
			break
		}
		if before := rest[:loc[0]]; before != "" {
			nodes = append(nodes, formatEmphasis(before, 0)...)
		}
		label := rest[loc[2]:loc[3]]
		target := rest[loc[4]:loc[5]]
		if href, ok := SanitizeURL(target, opts.Base); ok {
			nodes = append(nodes, Node{
				Kind:     Link,
				Href:     href,
				External: !IsInternal(target),
				Children: formatEmphasis(label, 1),
			})
		} else {
			// Rejected target: replay the whole match as plain text.
			tracer().Debugf("inline: link target rejected: %q", target)
			nodes = append(nodes, Node{Kind: Plain, Text: rest[loc[0]:loc[1]]})
		}
		rest = rest[loc[1]:]
	}
	return nodes
}

// formatEmphasis scans text for the earliest-starting emphasis marker and
// recurses into its content.
func formatEmphasis(text string, depth int) []Node {
	var nodes []Node
	for text != "" {
		if depth >= maxDepth {
			nodes = append(nodes, Node{Kind: Plain, Text: text})
			return nodes
		}
		best, bestLoc := -1, []int(nil)
		for i, m := range matchers {
			loc := m.pattern.FindStringSubmatchIndex(text)
			if loc == nil {
				continue
			}
			if bestLoc == nil || loc[0] < bestLoc[0] {
				best, bestLoc = i, loc
			}
		}
		if bestLoc == nil {
			nodes = append(nodes, Node{Kind: Plain, Text: text})
			return nodes
		}
		if before := text[:bestLoc[0]]; before != "" {
			nodes = append(nodes, Node{Kind: Plain, Text: before})
		}
		m := matchers[best]
		content := text[bestLoc[2]:bestLoc[3]]
		if m.verbatim {
			nodes = append(nodes, Node{Kind: m.kind, Text: content})
		} else {
			nodes = append(nodes, Node{Kind: m.kind, Children: formatEmphasis(content, depth+1)})
		}
		text = text[bestLoc[1]:]
	}
	return nodes
}
