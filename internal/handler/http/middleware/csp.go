package middleware

import (
	"net/http"
	"strings"

	"elastic-views/pkg/config"
	"elastic-views/pkg/security/csp"
)

// CSPConfig selects a Content-Security-Policy per path prefix.
type CSPConfig struct {
	Enabled bool
	// DefaultPolicy applies when no prefix matches. nil sends no header.
	DefaultPolicy *csp.CSPBuilder
	// PathPolicies maps a path prefix to its policy; the longest prefix wins.
	PathPolicies map[string]*csp.CSPBuilder
	ReportOnly   bool
}

// LoadCSPConfig reads SEARCH_CSP_ENABLED (default true) and
// SEARCH_CSP_REPORT_ONLY (default false) and returns the policies for the
// routes this server exposes.
func LoadCSPConfig() CSPConfig {
	return CSPConfig{
		Enabled:       config.GetEnvBool("SEARCH_CSP_ENABLED", true),
		ReportOnly:    config.GetEnvBool("SEARCH_CSP_REPORT_ONLY", false),
		DefaultPolicy: csp.StrictPolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/search/":      csp.SearchPagePolicy(),
			"/search/json/": csp.StrictPolicy(),
			"/swagger/":     csp.SwaggerUIPolicy(),
		},
	}
}

type renderedPolicy struct {
	prefix string
	header string
	value  string
}

// CSP sets the policy header selected for each request path. Header
// values are rendered once, here, so requests never touch the builders.
func CSP(cfg CSPConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	render := func(prefix string, b *csp.CSPBuilder) *renderedPolicy {
		if b == nil {
			return nil
		}
		value := b.Build()
		if value == "" {
			return nil
		}
		header := b.HeaderName()
		if cfg.ReportOnly {
			header = csp.HeaderReportOnly
		}
		return &renderedPolicy{prefix: prefix, header: header, value: value}
	}

	fallback := render("", cfg.DefaultPolicy)
	policies := make([]renderedPolicy, 0, len(cfg.PathPolicies))
	for prefix, b := range cfg.PathPolicies {
		if p := render(prefix, b); p != nil {
			policies = append(policies, *p)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p := selectPolicy(policies, fallback, r.URL.Path); p != nil {
				w.Header().Set(p.header, p.value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func selectPolicy(policies []renderedPolicy, fallback *renderedPolicy, path string) *renderedPolicy {
	var best *renderedPolicy
	for i := range policies {
		p := &policies[i]
		if strings.HasPrefix(path, p.prefix) && (best == nil || len(p.prefix) > len(best.prefix)) {
			best = p
		}
	}
	if best != nil {
		return best
	}
	return fallback
}
