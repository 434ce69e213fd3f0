package router

import (
	"regexp"
	"strings"
)

// placeholder marks a path segment captured into Vars.
const placeholder = "{}"

// A pattern matches request paths against a route's path template.
type pattern struct {
	re *regexp.Regexp
}

// compile turns a path template like "/configurations/{}/{}" into a pattern.
//
// Each placeholder captures one or more non-slash characters.
// The rest of the template matches literally, ignoring case.
// Only the end of the path is anchored.
func compile(path string) pattern {
	parts := strings.Split(path, placeholder)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}

	return pattern{re: regexp.MustCompile("(?i)" + strings.Join(parts, "([^/]+)") + "$")}
}

// match reports whether path matches and, if so, its captures in placeholder order.
func (p pattern) match(path string) ([]string, bool) {
	m := p.re.FindStringSubmatch(trimSlash(path))
	if m == nil {
		return nil, false
	}

	return m[1:], true
}

// trimSlash drops a single trailing slash from any path but the root.
func trimSlash(path string) string {
	if path == "/" {
		return path
	}

	return strings.TrimSuffix(path, "/")
}
