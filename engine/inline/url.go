package inline

import (
	"net/url"
	"strings"
)

// Schemes accepted for absolute link targets.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// IsInternal reports whether a link target is an internal reference — a
// fragment, an absolute path, or an explicit relative path. Internal
// references pass through sanitization unmodified and are rendered
// without new-tab treatment.
func IsInternal(raw string) bool {
	s := strings.TrimSpace(raw)
	return strings.HasPrefix(s, "#") ||
		strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../")
}

// SanitizeURL validates and normalizes a link target.
//
// Internal references (see IsInternal) are returned unchanged. Everything
// else is resolved as an absolute or base-relative reference and accepted
// only for the http, https, mailto and tel schemes, returning the
// normalized absolute form. Unparseable targets and disallowed schemes
// report ok == false; callers must leave the source text unmodified in
// that case — a rejected target is never a fatal condition.
func SanitizeURL(raw string, base *url.URL) (href string, ok bool) {
	s := strings.TrimSpace(raw)
	if IsInternal(s) {
		return s, true
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" {
		if base == nil {
			return "", false
		}
		u = base.ResolveReference(u)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	return u.String(), true
}
