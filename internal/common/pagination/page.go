package pagination

import "encoding/json"

// Page describes one page of a Paginator.
type Page struct {
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

// HasPrevious reports whether a page precedes this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasOtherPages reports whether there is more than one page.
func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

// NextPageNumber returns the next page number, or false on the last page.
func (p Page) NextPageNumber() (int, bool) {
	if !p.HasNext() {
		return 0, false
	}
	return p.Number + 1, true
}

// PreviousPageNumber returns the previous page number, or false on the first page.
func (p Page) PreviousPageNumber() (int, bool) {
	if !p.HasPrevious() {
		return 0, false
	}
	return p.Number - 1, true
}

// StartIndex returns the 1-based index of the first item on the page,
// or 0 when the collection is empty.
func (p Page) StartIndex() int64 {
	if p.Count == 0 {
		return 0
	}
	return int64(p.PerPage)*int64(p.Number-1) + 1
}

// EndIndex returns the 1-based index of the last item on the page.
func (p Page) EndIndex() int64 {
	if p.Number == p.NumPages {
		return p.Count
	}
	return int64(p.Number) * int64(p.PerPage)
}

// Len returns the number of items on the page.
func (p Page) Len() int {
	if p.Count == 0 {
		return 0
	}
	return int(p.EndIndex() - p.StartIndex() + 1)
}

type pageJSON struct {
	Number             int   `json:"number"`
	NumPages           int   `json:"num_pages"`
	Count              int64 `json:"count"`
	PerPage            int   `json:"per_page"`
	StartIndex         int64 `json:"start_index"`
	EndIndex           int64 `json:"end_index"`
	HasNext            bool  `json:"has_next"`
	HasPrevious        bool  `json:"has_previous"`
	HasOtherPages      bool  `json:"has_other_pages"`
	NextPageNumber     *int  `json:"next_page_number,omitempty"`
	PreviousPageNumber *int  `json:"previous_page_number,omitempty"`
}

// MarshalJSON renders the page with its derived navigation fields.
func (p Page) MarshalJSON() ([]byte, error) {
	out := pageJSON{
		Number:        p.Number,
		NumPages:      p.NumPages,
		Count:         p.Count,
		PerPage:       p.PerPage,
		StartIndex:    p.StartIndex(),
		EndIndex:      p.EndIndex(),
		HasNext:       p.HasNext(),
		HasPrevious:   p.HasPrevious(),
		HasOtherPages: p.HasOtherPages(),
	}
	if n, ok := p.NextPageNumber(); ok {
		out.NextPageNumber = &n
	}
	if n, ok := p.PreviousPageNumber(); ok {
		out.PreviousPageNumber = &n
	}
	return json.Marshal(out)
}
