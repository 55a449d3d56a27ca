package search

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"elastic-views/internal/observability/logging"
	searchUC "elastic-views/internal/usecase/search"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTemplate is the template rendered by HTMLHandler when none is set.
const DefaultTemplate = "simple_result.html"

var defaultTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// htmlContext is what the template sees: the data bundle plus the name of
// the term parameter for the search form.
type htmlContext struct {
	*searchUC.Data
	TermParam string
}

// HTMLHandler renders search results as an HTML page.
type HTMLHandler struct {
	Svc    *searchUC.Service
	Logger *slog.Logger

	// Templates overrides the embedded templates; Template selects one.
	Templates *template.Template
	Template  string
}

// ServeHTTP キーワード検索（HTML）
// @Summary      キーワード検索（HTML）
// @Description  検索結果を HTML ページとして返します
// @Tags         search
// @Produce      html
// @Param        q query string true  "検索語（query_string 構文）"
// @Param        p query int    false "ページ番号（1-indexed）"
// @Success      200 {string} string "検索結果ページ"
// @Failure      404 {string} string "Search term not found"
// @Failure      429 {string} string "Too many requests"
// @Failure      500 {string} string "Server error"
// @Failure      503 {string} string "Search backend unavailable"
// @Failure      504 {string} string "Search backend timed out"
// @Router       /search/ [get]
func (h HTMLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	base := loggerOrDefault(h.Logger)
	logger := logging.WithRequestID(r.Context(), base)

	req := h.Svc.NewRequest(r.URL.Query())
	data, err := req.Data(r.Context())
	if err != nil {
		code, msg := classify(err)
		observeFailure(r.Context(), base, "html", req.PageNumber(), code, errorType(err), err)
		http.Error(w, msg, code)
		return
	}

	// テンプレートエラーで半端な HTML を返さないようバッファに描画
	var buf bytes.Buffer
	if err := h.templates().ExecuteTemplate(&buf, h.templateName(), htmlContext{
		Data:      data,
		TermParam: h.Svc.TermParamName(),
	}); err != nil {
		observeFailure(r.Context(), base.With(slog.String("template", h.templateName())),
			"html", data.Page.Number, http.StatusInternalServerError, errTypeRender, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	observeSuccess(r.Context(), base, "html", data, start)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", slog.Any("error", err))
	}
}

func (h HTMLHandler) templates() *template.Template {
	if h.Templates != nil {
		return h.Templates
	}
	return defaultTemplates
}

func (h HTMLHandler) templateName() string {
	if h.Template != "" {
		return h.Template
	}
	return DefaultTemplate
}
