// Package pathutil maps request paths to a bounded set of metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// UnmatchedPath is the label used for every path outside the known routes.
const UnmatchedPath = "/:unmatched"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the dynamic routes. Evaluated in order.
var pathPatterns = []*PathPattern{
	// Swagger UI serves many assets below one prefix
	{Pattern: regexp.MustCompile(`^/swagger(/.*)?$`), Template: "/swagger/*"},
}

// staticPaths are served as-is. Trailing slashes are stripped before lookup.
var staticPaths = map[string]struct{}{
	"/":            {},
	"/search":      {},
	"/search/json": {},
	"/health":      {},
	"/ready":       {},
	"/live":        {},
	"/metrics":     {},
}

// NormalizePath converts a request path into its metric label.
//
//	/search/?q=go   -> /search
//	/search/json/   -> /search/json
//	/swagger/doc.js -> /swagger/*
//	/wp-admin.php   -> /:unmatched
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// ルート以外の末尾スラッシュを除去
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Scanners probing random URLs must not create new series.
	return UnmatchedPath
}

// GetExpectedCardinality returns the upper bound of distinct path labels.
func GetExpectedCardinality() int {
	return len(staticPaths) + len(pathPatterns) + 1
}
