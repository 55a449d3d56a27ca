package search

import "elastic-views/internal/common/pagination"

// Data is the bundle shared by the HTML and JSON views.
type Data struct {
	Results      []Record        `json:"object_list"`
	TotalResults int64           `json:"total_results"`
	Index        string          `json:"elastic_index"`
	Term         string          `json:"elastic_query"`
	Page         pagination.Page `json:"page"`
	RangeStart   int             `json:"range_start"`
	RangeEnd     int             `json:"range_end"`

	// Navigation links for the HTML view ("" when there is no such page).
	NextPageURL     string `json:"-"`
	PreviousPageURL string `json:"-"`
}
