// Package search provides the HTML and JSON views of the keyword search.
package search

import (
	"log/slog"
	"net/http"

	searchUC "elastic-views/internal/usecase/search"
)

// Middleware groups the optional wrappers applied to the search routes.
// A nil field leaves the route unwrapped.
type Middleware struct {
	// RateLimit applies to both views.
	RateLimit func(http.Handler) http.Handler
	// CORS applies to the JSON view, including its preflight.
	CORS func(http.Handler) http.Handler
	// Observe sees every response either view produces. Rate-limited
	// requests never reach it.
	Observe func(http.Handler) http.Handler
}

// Register mounts the search views on mux:
//
//	GET /search/       HTML
//	GET /search/json/  JSON
func Register(mux *http.ServeMux, svc *searchUC.Service, logger *slog.Logger, mw Middleware) {
	html := wrap(wrap(HTMLHandler{Svc: svc, Logger: logger}, mw.Observe), mw.RateLimit)
	json := wrap(wrap(wrap(JSONHandler{Svc: svc, Logger: logger}, mw.Observe), mw.RateLimit), mw.CORS)

	mux.Handle("GET /search/{$}", html)
	mux.Handle("GET /search/json/{$}", json)
	// rs/cors answers preflight requests itself before reaching the handler.
	mux.Handle("OPTIONS /search/json/{$}", wrap(http.HandlerFunc(methodNotAllowed), mw.CORS))
}

func wrap(h http.Handler, mw func(http.Handler) http.Handler) http.Handler {
	if mw == nil {
		return h
	}
	return mw(h)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
