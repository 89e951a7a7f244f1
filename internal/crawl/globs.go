package crawl

import (
	"net/url"
	"path"
	"strings"
)

// MatchGlob reports whether a URL path matches a scope pattern. Patterns are
// slash-separated globs where `**` spans any number of segments and `*`
// matches within one segment, e.g. `**/unit/**` or `**/syllabus/**`.
func MatchGlob(pattern, urlPath string) bool {
	p := splitSegments(pattern)
	s := splitSegments(urlPath)
	return matchSegments(p, s)
}

// InScope reports whether the URL is allowed by the scope list. An empty
// scope allows every path.
func InScope(scope []string, u *url.URL) bool {
	if len(scope) == 0 {
		return true
	}
	for _, pattern := range scope {
		if MatchGlob(pattern, u.Path) {
			return true
		}
	}
	return false
}

func splitSegments(raw string) []string {
	raw = strings.Trim(raw, "/")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], segments) {
			return true
		}
		return len(segments) > 0 && matchSegments(pattern, segments[1:])
	}
	if len(segments) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], segments[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}
