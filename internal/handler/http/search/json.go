package search

import (
	"log/slog"
	"net/http"
	"time"

	"elastic-views/internal/handler/http/respond"
	searchUC "elastic-views/internal/usecase/search"
)

// Response wraps the data bundle for the JSON view.
type Response struct {
	Data *searchUC.Data `json:"data"`
}

// JSONHandler answers search requests with the data bundle as JSON.
type JSONHandler struct {
	Svc    *searchUC.Service
	Logger *slog.Logger
}

// ServeHTTP キーワード検索（JSON）
// @Summary      キーワード検索（JSON）
// @Description  検索語を Elasticsearch に渡し、1 ページ分の結果とページ情報を返します
// @Tags         search
// @Produce      json
// @Param        q query string true  "検索語（query_string 構文）"
// @Param        p query int    false "ページ番号（1-indexed、不正値は 1、範囲外は最終ページ）"
// @Success      200 {object} Response "検索結果"
// @Failure      404 {object} map[string]string "Search term not found"
// @Failure      429 {object} map[string]string "Too many requests" headers(Retry-After=integer)
// @Failure      500 {object} map[string]string "Server error"
// @Failure      503 {object} map[string]string "Search backend unavailable"
// @Failure      504 {object} map[string]string "Search backend timed out"
// @Router       /search/json/ [get]
func (h JSONHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := loggerOrDefault(h.Logger)

	req := h.Svc.NewRequest(r.URL.Query())
	data, err := req.Data(r.Context())
	if err != nil {
		code, msg := classify(err)
		observeFailure(r.Context(), logger, "json", req.PageNumber(), code, errorType(err), err)
		respond.JSON(w, code, map[string]string{"error": msg})
		return
	}

	observeSuccess(r.Context(), logger, "json", data, start)
	respond.JSON(w, http.StatusOK, Response{Data: data})
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
