package search

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"elastic-views/internal/domain/entity"
)

// ResolveFunc derives a display value from a hit. An empty string means
// "not provided".
type ResolveFunc func(hit entity.Hit) string

// Record is a display-ready search result.
// It carries either a name and URL, or the document id, never both.
type Record struct {
	Score float64
	ID    string
	Name  string
	URL   string
}

// HasLink reports whether the record carries a name and URL.
func (r Record) HasLink() bool {
	return r.Name != "" && r.URL != ""
}

// MarshalJSON renders {score, name, url} for linked records and {score, id}
// otherwise, so both shapes stay fixed.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.HasLink() {
		return json.Marshal(struct {
			Score float64 `json:"score"`
			Name  string  `json:"name"`
			URL   string  `json:"url"`
		}{r.Score, r.Name, r.URL})
	}
	return json.Marshal(struct {
		Score float64 `json:"score"`
		ID    string  `json:"id"`
	}{r.Score, r.ID})
}

// Formatter maps raw hits to records. URL and Name are optional hooks;
// nil means "not provided".
type Formatter struct {
	URL  ResolveFunc
	Name ResolveFunc
}

// Format maps one hit. Only when both name and URL resolve to non-empty
// values is the record linked; otherwise any partial value is discarded
// and the record falls back to the id.
func (f Formatter) Format(hit entity.Hit) Record {
	var name, link string
	if f.URL != nil {
		link = f.URL(hit)
	}
	if f.Name != nil {
		name = f.Name(hit)
	}
	if name != "" && link != "" {
		return Record{Score: hit.Score, Name: name, URL: link}
	}
	return Record{Score: hit.Score, ID: hit.ID}
}

// FormatAll maps hits in order.
func (f Formatter) FormatAll(hits []entity.Hit) []Record {
	out := make([]Record, 0, len(hits))
	for _, h := range hits {
		out = append(out, f.Format(h))
	}
	return out
}

// SourceField resolves to the string value of a top-level _source field.
// An empty field name yields a nil ResolveFunc.
func SourceField(field string) ResolveFunc {
	if field == "" {
		return nil
	}
	return func(hit entity.Hit) string {
		return hit.SourceString(field)
	}
}

// URLTemplate resolves placeholders in tmpl: {id}, {index} and {<field>}
// for string _source fields. Values are path-escaped. When a placeholder
// stays unresolved the hit has no URL.
//
//	URLTemplate("/articles/{id}/")         // "/articles/42/"
//	URLTemplate("/{index}/{slug}")         // "/news/hello-world"
func URLTemplate(tmpl string) ResolveFunc {
	if tmpl == "" {
		return nil
	}
	return func(hit entity.Hit) string {
		pairs := []string{
			"{id}", url.PathEscape(hit.ID),
			"{index}", url.PathEscape(hit.Index),
		}
		for k, v := range hit.Source {
			if s, ok := v.(string); ok {
				pairs = append(pairs, fmt.Sprintf("{%s}", k), url.PathEscape(s))
			}
		}
		out := strings.NewReplacer(pairs...).Replace(tmpl)
		if strings.ContainsAny(out, "{}") {
			return ""
		}
		return out
	}
}
