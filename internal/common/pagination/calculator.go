package pagination

import "math"

// CalculateOffset calculates the backend offset ("from") based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 25 -> Offset 0
//   - Page 2, Limit 50 -> Offset 50
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < limit, returns 1
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 25 -> 1 page
//   - Total 25, Limit 25 -> 1 page
//   - Total 26, Limit 25 -> 2 pages
//   - Total 120, Limit 50 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 {
		return 1 // Always at least 1 page
	}
	// (total + limit - 1) / limit would overflow near MaxInt64
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	if totalPages > math.MaxInt {
		return math.MaxInt
	}
	return int(totalPages)
}

// Window is the (Start, End) offset pair used to slice the backend result set.
// End is exclusive, so End-Start is always the page size.
type Window struct {
	Start int
	End   int
}

// Size returns the number of slots in the window.
func (w Window) Size() int {
	return w.End - w.Start
}

// CalculateWindow returns the offset window for a 1-based page number.
// Page numbers below 1 are treated as 1, and page numbers whose window
// would overflow int are clamped to the last representable page.
func CalculateWindow(page, size int) Window {
	if page < 1 {
		page = 1
	}
	if size > 0 && page > math.MaxInt/size {
		page = math.MaxInt / size
	}
	start := CalculateOffset(page, size)
	return Window{Start: start, End: start + size}
}
