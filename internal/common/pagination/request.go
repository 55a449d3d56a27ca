package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrTotalCountNotConfigured is returned when a PageRequest is asked for its
// paginator without a TotalCount function. It is a wiring error and is meant
// to surface during development, not in production.
var ErrTotalCountNotConfigured = errors.New("pagination: PageRequest requires a TotalCount function")

// PageRequest bridges the page parameter of an inbound request and a Paginator.
//
// TotalCount is the required extension point: it supplies the number of
// items to paginate (for search views, the backend hit total). Param and
// PageSize fall back to DefaultPageParam and DefaultPageSize when empty.
type PageRequest struct {
	Values     url.Values
	Param      string
	PageSize   int
	TotalCount func() (int64, error)
}

// NewPageRequest returns a PageRequest configured from cfg.
func NewPageRequest(values url.Values, cfg Config, total func() (int64, error)) *PageRequest {
	return &PageRequest{
		Values:     values,
		Param:      cfg.PageParam,
		PageSize:   cfg.PageSize,
		TotalCount: total,
	}
}

// ParamName returns the name of the page query parameter.
func (r *PageRequest) ParamName() string {
	if r.Param == "" {
		return DefaultPageParam
	}
	return r.Param
}

// Size returns the configured page size.
func (r *PageRequest) Size() int {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	return r.PageSize
}

// PageNumber parses the page parameter. Missing, unparseable and
// non-positive values all yield 1; it never fails.
func (r *PageRequest) PageNumber() int {
	raw := strings.TrimSpace(r.Values.Get(r.ParamName()))
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// Total returns the number of items to paginate.
func (r *PageRequest) Total() (int64, error) {
	if r.TotalCount == nil {
		return 0, ErrTotalCountNotConfigured
	}
	return r.TotalCount()
}

// Paginator builds a Paginator from Total and Size.
func (r *PageRequest) Paginator() (*Paginator, error) {
	total, err := r.Total()
	if err != nil {
		return nil, err
	}
	return NewPaginator(total, r.Size())
}

// CurrentPage resolves the requested page. A page that is not a positive
// integer resolves to the first page, a page past the end resolves to the
// last page. Any other error (total count, page size) is returned.
func (r *PageRequest) CurrentPage() (Page, error) {
	p, err := r.Paginator()
	if err != nil {
		return Page{}, err
	}
	page, err := p.Page(r.PageNumber())
	switch {
	case err == nil:
		return page, nil
	case errors.Is(err, ErrPageNotAnInteger):
		RecordNormalized("not_an_integer")
		return p.First(), nil
	case errors.Is(err, ErrEmptyPage):
		RecordNormalized("empty_page")
		return p.Last(), nil
	default:
		return Page{}, err
	}
}

// Window returns the offset window of the requested page number.
// It is pure arithmetic and does not consult the paginator, so it can be
// used to build the backend query before the total count is known.
func (r *PageRequest) Window() Window {
	return CalculateWindow(r.PageNumber(), r.Size())
}

// PageURL returns a relative URL ("?...") for page n that keeps every
// other query parameter of the request.
func (r *PageRequest) PageURL(n int) string {
	values := url.Values{}
	for k, v := range r.Values {
		values[k] = append([]string(nil), v...)
	}
	values.Set(r.ParamName(), strconv.Itoa(n))
	return "?" + values.Encode()
}

// NextPageURL returns the URL of the page after page, or "" on the last page.
func (r *PageRequest) NextPageURL(page Page) string {
	n, ok := page.NextPageNumber()
	if !ok {
		return ""
	}
	return r.PageURL(n)
}

// PreviousPageURL returns the URL of the page before page, or "" on the first page.
func (r *PageRequest) PreviousPageURL(page Page) string {
	n, ok := page.PreviousPageNumber()
	if !ok {
		return ""
	}
	return r.PageURL(n)
}
