package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by Paginator.Page.
var (
	// ErrPageNotAnInteger indicates that the requested page is not a positive integer.
	// Callers fall back to the first page.
	ErrPageNotAnInteger = errors.New("page number is not a positive integer")

	// ErrEmptyPage indicates that the requested page is past the last page.
	// Callers fall back to the last page.
	ErrEmptyPage = errors.New("page contains no results")

	// ErrInvalidPageSize indicates a non-positive page size.
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
)

// Paginator paginates a collection known only by its size.
// Page boundaries are computed arithmetically, so memory and CPU stay O(1)
// no matter how large the count reported by the search backend is.
type Paginator struct {
	count    int64
	perPage  int
	numPages int
}

// NewPaginator returns a Paginator for count items, perPage items per page.
// A negative count is treated as 0.
func NewPaginator(count int64, perPage int) (*Paginator, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, perPage)
	}
	if count < 0 {
		count = 0
	}
	return &Paginator{
		count:    count,
		perPage:  perPage,
		numPages: CalculateTotalPages(count, perPage),
	}, nil
}

// Count returns the total number of items.
func (p *Paginator) Count() int64 { return p.count }

// PerPage returns the page size.
func (p *Paginator) PerPage() int { return p.perPage }

// NumPages returns max(1, ceil(count/perPage)).
func (p *Paginator) NumPages() int { return p.numPages }

// Validate checks that n addresses an existing page.
func (p *Paginator) Validate(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrPageNotAnInteger, n)
	}
	if n > p.numPages {
		return fmt.Errorf("%w: page %d of %d", ErrEmptyPage, n, p.numPages)
	}
	return nil
}

// Page returns the descriptor of the 1-based page n.
// Page 1 is always valid, even when the count is 0.
func (p *Paginator) Page(n int) (Page, error) {
	if err := p.Validate(n); err != nil {
		return Page{}, err
	}
	return Page{
		Number:   n,
		NumPages: p.numPages,
		Count:    p.count,
		PerPage:  p.perPage,
	}, nil
}

// PageFromString parses raw and returns the matching page.
// Unparseable input yields ErrPageNotAnInteger.
func (p *Paginator) PageFromString(raw string) (Page, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Page{}, fmt.Errorf("%w: %q", ErrPageNotAnInteger, raw)
	}
	return p.Page(n)
}

// First returns page 1.
func (p *Paginator) First() Page {
	return Page{Number: 1, NumPages: p.numPages, Count: p.count, PerPage: p.perPage}
}

// Last returns the last page.
func (p *Paginator) Last() Page {
	return Page{Number: p.numPages, NumPages: p.numPages, Count: p.count, PerPage: p.perPage}
}
