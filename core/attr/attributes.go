package attr

import (
	"regexp"
	"strings"
	"sync"
)

// Attribute patterns are built per attribute name and reused; the set of
// names is small and fixed (src, alt, style, poster, …).
var (
	attrPatterns  = map[string]*regexp.Regexp{}
	tokenPatterns = map[string]*regexp.Regexp{}
	patternLock   sync.Mutex
)

func attrPattern(name string) *regexp.Regexp {
	patternLock.Lock()
	defer patternLock.Unlock()
	if re, ok := attrPatterns[name]; ok {
		return re
	}
	// The leading class keeps the name from matching inside a longer
	// attribute name such as data-src.
	re := regexp.MustCompile(`(?i)(?:^|[^\w-])` + regexp.QuoteMeta(name) +
		`\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	attrPatterns[name] = re
	return re
}

func tokenPattern(name string) *regexp.Regexp {
	patternLock.Lock()
	defer patternLock.Unlock()
	if re, ok := tokenPatterns[name]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)(?:^|\s)` + regexp.QuoteMeta(name) +
		`(?:[\s=>/]|$)`)
	tokenPatterns[name] = re
	return re
}

// Quoted attribute values, to be blanked out before token matching.
var quotedValuePattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)

// Attribute extracts the value of a name="…" or name='…' attribute from a
// markup fragment. Matching is case-insensitive and returns the first
// occurrence, with surrounding whitespace trimmed. The second return value
// is false if the attribute is not present.
//
// The fragment does not have to be a well-formed HTML tag; Attribute is
// used on dialect comment markers as well.
func Attribute(fragment, name string) (string, bool) {
	m := attrPattern(name).FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	value := m[1]
	if value == "" && m[2] != "" {
		value = m[2]
	}
	return strings.TrimSpace(value), true
}

// HasToken reports whether a boolean attribute token is present in a
// markup fragment, with or without a value (`autoplay`, `autoplay=""`).
// Text inside quoted attribute values is not token territory.
func HasToken(fragment, name string) bool {
	stripped := quotedValuePattern.ReplaceAllString(fragment, " ")
	return tokenPattern(name).MatchString(stripped)
}
