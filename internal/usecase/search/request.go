package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"elastic-views/internal/common/pagination"
	"elastic-views/internal/domain/entity"
	"elastic-views/internal/handler/http/requestid"
	"elastic-views/internal/observability/logging"
	"elastic-views/internal/observability/tracing"
)

// Request is the search flow of one HTTP request.
//
// The backend result is computed at most once per Request: total-count
// readers and row formatting share it. A Request is not safe for
// concurrent use and must be discarded with its HTTP request.
type Request struct {
	svc    *Service
	values url.Values
	cell   resultCell
}

// resultCell stores the outcome of the first backend call.
type resultCell struct {
	done   bool
	result *entity.SearchResult
	err    error
}

// Term returns the search term, or ErrQueryTermNotFound.
func (r *Request) Term() (string, error) {
	return r.svc.termFunc()(r.values)
}

// Pages returns the pagination view of the request. TotalCount reads the
// memoised backend total with ctx.
func (r *Request) Pages(ctx context.Context) *pagination.PageRequest {
	return pagination.NewPageRequest(r.values, r.svc.Config.Pagination, func() (int64, error) {
		return r.TotalResults(ctx)
	})
}

// PageNumber returns the requested page number, 1 when absent or invalid.
func (r *Request) PageNumber() int {
	return pagination.NewPageRequest(r.values, r.svc.Config.Pagination, nil).PageNumber()
}

// Window returns the (start, end) offset window of the requested page.
func (r *Request) Window() pagination.Window {
	return pagination.NewPageRequest(r.values, r.svc.Config.Pagination, nil).Window()
}

// QueryRequest returns the term and window of this request.
func (r *Request) QueryRequest() (entity.QueryRequest, error) {
	term, err := r.Term()
	if err != nil {
		return entity.QueryRequest{}, err
	}
	w := r.Window()
	return entity.NewQueryRequest(term, w.Start, w.Size())
}

// Query builds the backend query body. It is rebuilt on every call.
func (r *Request) Query() (*entity.Query, error) {
	req, err := r.QueryRequest()
	if err != nil {
		return nil, err
	}
	return QueryBuilder{DefaultField: r.svc.Config.DefaultField}.Build(req), nil
}

// Result executes the query on the first call and returns the stored
// outcome afterwards, including a stored error. A missing term fails
// before the backend is contacted.
func (r *Request) Result(ctx context.Context) (*entity.SearchResult, error) {
	if r.cell.done {
		return r.cell.result, r.cell.err
	}
	q, err := r.Query()
	if err != nil {
		// Not memoised: no backend call happened.
		return nil, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "search.execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("search.index", r.svc.Config.Index),
		attribute.Int("search.from", q.From),
		attribute.Int("search.size", q.Size),
	)

	pagination.LogRequest(r.svc.logger(), requestid.FromContext(ctx), r.PageNumber(), r.Window())

	logger := logging.WithRequestID(ctx, r.svc.logger())
	start := time.Now()
	result, err := r.svc.Repo.Search(ctx, r.svc.Config.Index, q)
	pagination.RecordDuration("backend", time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		logger.Error("search backend failed",
			slog.String("index", r.svc.Config.Index),
			slog.Any("error", err))
		r.cell = resultCell{done: true, err: fmt.Errorf("search %s: %w", r.svc.Config.Index, err)}
		return nil, r.cell.err
	}
	if result == nil {
		result = &entity.SearchResult{}
	}
	span.SetAttributes(
		attribute.Int64("search.total", result.Total),
		attribute.Int("search.hits", len(result.Hits)),
	)
	logger.Debug("search executed",
		slog.String("index", r.svc.Config.Index),
		slog.Int64("total", result.Total),
		slog.Int("hits", len(result.Hits)),
		slog.Duration("duration", time.Since(start)))

	r.cell = resultCell{done: true, result: result}
	return result, nil
}

// TotalResults returns the backend total hit count.
func (r *Request) TotalResults(ctx context.Context) (int64, error) {
	res, err := r.Result(ctx)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

// Records returns the formatted hits of the current window.
func (r *Request) Records(ctx context.Context) ([]Record, error) {
	res, err := r.Result(ctx)
	if err != nil {
		return nil, err
	}
	return r.svc.Formatter.FormatAll(res.Hits), nil
}

// Page resolves the current page against the backend total.
func (r *Request) Page(ctx context.Context) (pagination.Page, error) {
	return r.Pages(ctx).CurrentPage()
}

// Data assembles the bundle rendered by the HTML and JSON views.
func (r *Request) Data(ctx context.Context) (*Data, error) {
	term, err := r.Term()
	if err != nil {
		return nil, err
	}
	records, err := r.Records(ctx)
	if err != nil {
		return nil, err
	}
	total, err := r.TotalResults(ctx)
	if err != nil {
		return nil, err
	}
	pages := r.Pages(ctx)
	page, err := pages.CurrentPage()
	if err != nil {
		return nil, err
	}
	w := pages.Window()
	return &Data{
		Results:         records,
		TotalResults:    total,
		Index:           r.svc.Config.Index,
		Term:            term,
		Page:            page,
		RangeStart:      w.Start,
		RangeEnd:        w.End,
		NextPageURL:     pages.NextPageURL(page),
		PreviousPageURL: pages.PreviousPageURL(page),
	}, nil
}

// IsNotFound reports whether err should be surfaced as a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQueryTermNotFound)
}
