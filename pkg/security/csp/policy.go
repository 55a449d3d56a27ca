// Package csp builds Content-Security-Policy header values.
package csp

import (
	"strings"
)

// Header names.
const (
	HeaderEnforce    = "Content-Security-Policy"
	HeaderReportOnly = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the output order so the header value is stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"form-action",
	"frame-ancestors",
	"base-uri",
	"object-src",
	"report-uri",
}

// CSPBuilder collects directives and renders them with Build.
//
//	policy := NewCSPBuilder().
//	    DefaultSrc("'none'").
//	    FormAction("'self'").
//	    Build()
//	// "default-src 'none'; form-action 'self'"
//
// A builder is not safe for concurrent mutation. Build the value once and
// share the string.
type CSPBuilder struct {
	directives map[string][]string
	reportOnly bool
}

// NewCSPBuilder returns an empty builder.
func NewCSPBuilder() *CSPBuilder {
	return &CSPBuilder{directives: make(map[string][]string)}
}

func (b *CSPBuilder) set(name string, sources []string) *CSPBuilder {
	b.directives[name] = sources
	return b
}

// DefaultSrc is the fallback for every fetch directive not set explicitly.
func (b *CSPBuilder) DefaultSrc(sources ...string) *CSPBuilder { return b.set("default-src", sources) }

func (b *CSPBuilder) ScriptSrc(sources ...string) *CSPBuilder  { return b.set("script-src", sources) }
func (b *CSPBuilder) StyleSrc(sources ...string) *CSPBuilder   { return b.set("style-src", sources) }
func (b *CSPBuilder) ImgSrc(sources ...string) *CSPBuilder     { return b.set("img-src", sources) }
func (b *CSPBuilder) FontSrc(sources ...string) *CSPBuilder    { return b.set("font-src", sources) }
func (b *CSPBuilder) ConnectSrc(sources ...string) *CSPBuilder { return b.set("connect-src", sources) }

// FormAction restricts where forms on the page may submit to. The search
// page's form submits back to itself.
func (b *CSPBuilder) FormAction(sources ...string) *CSPBuilder { return b.set("form-action", sources) }

// FrameAncestors controls who may frame the page (clickjacking).
func (b *CSPBuilder) FrameAncestors(sources ...string) *CSPBuilder {
	return b.set("frame-ancestors", sources)
}

func (b *CSPBuilder) BaseURI(sources ...string) *CSPBuilder   { return b.set("base-uri", sources) }
func (b *CSPBuilder) ObjectSrc(sources ...string) *CSPBuilder { return b.set("object-src", sources) }

// ReportURI sets where browsers post violation reports.
func (b *CSPBuilder) ReportURI(uri string) *CSPBuilder {
	return b.set("report-uri", []string{uri})
}

// ReportOnly switches the header to Content-Security-Policy-Report-Only.
func (b *CSPBuilder) ReportOnly(enabled bool) *CSPBuilder {
	b.reportOnly = enabled
	return b
}

// Build renders the directives in a fixed order. Directives without
// sources are omitted; an empty builder yields "".
func (b *CSPBuilder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, name := range directiveOrder {
		sources := b.directives[name]
		if len(sources) == 0 {
			continue
		}
		parts = append(parts, name+" "+strings.Join(sources, " "))
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy belongs in.
func (b *CSPBuilder) HeaderName() string {
	if b.reportOnly {
		return HeaderReportOnly
	}
	return HeaderEnforce
}

// SearchPagePolicy is for the HTML search view: no scripts, same-origin
// styles and images, and the search form may only submit to this origin.
func SearchPagePolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		StyleSrc("'self'").
		ImgSrc("'self'").
		FormAction("'self'").
		FrameAncestors("'none'").
		BaseURI("'none'")
}

// SwaggerUIPolicy allows what the embedded Swagger UI needs to render.
func SwaggerUIPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		ObjectSrc("'none'")
}

// StrictPolicy is for JSON and probe endpoints that never render in a
// browser.
func StrictPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		FrameAncestors("'none'")
}
