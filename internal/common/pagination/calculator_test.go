package pagination_test

import (
	"math"
	"testing"

	"elastic-views/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 25, want: 0},
		{name: "second page", page: 2, limit: 50, want: 50},
		{name: "third page", page: 3, limit: 10, want: 20},
		{name: "page 1 with limit 1", page: 1, limit: 1, want: 0},
		{name: "large page number", page: 1000, limit: 20, want: 19980},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.CalculateOffset(tt.page, tt.limit)
			if got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 25, want: 1},
		{name: "negative total", total: -5, limit: 25, want: 1},
		{name: "total less than limit", total: 10, limit: 25, want: 1},
		{name: "total equals limit", total: 25, limit: 25, want: 1},
		{name: "total one more than limit", total: 26, limit: 25, want: 2},
		{name: "total 120 with limit 50", total: 120, limit: 50, want: 3},
		{name: "total 150 with limit 50", total: 150, limit: 50, want: 3},
		{name: "total 151 with limit 50", total: 151, limit: 50, want: 4},
		{name: "large total", total: 10_000_000_000, limit: 100, want: 100_000_000},
		{name: "limit 1", total: 5, limit: 1, want: 5},
		{name: "max total with remainder", total: math.MaxInt64, limit: 50, want: int(math.MaxInt64/50) + 1},
		{name: "max total limit 1", total: math.MaxInt64, limit: 1, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.CalculateTotalPages(tt.total, tt.limit)
			if got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page int
		size int
		want pagination.Window
	}{
		{name: "first page", page: 1, size: 25, want: pagination.Window{Start: 0, End: 25}},
		{name: "second page of 50", page: 2, size: 50, want: pagination.Window{Start: 50, End: 100}},
		{name: "zero page treated as first", page: 0, size: 50, want: pagination.Window{Start: 0, End: 50}},
		{name: "negative page treated as first", page: -3, size: 10, want: pagination.Window{Start: 0, End: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.CalculateWindow(tt.page, tt.size)
			if got != tt.want {
				t.Errorf("CalculateWindow(%d, %d) = %+v, want %+v", tt.page, tt.size, got, tt.want)
			}
		})
	}
}

func TestCalculateWindow_Invariants(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 7, 25, 50, 100} {
		for page := 1; page <= 200; page++ {
			w := pagination.CalculateWindow(page, size)
			if w.Size() != size {
				t.Fatalf("page %d size %d: End-Start = %d", page, size, w.Size())
			}
			if w.Start != (page-1)*size {
				t.Fatalf("page %d size %d: Start = %d", page, size, w.Start)
			}
			if w.Start < 0 {
				t.Fatalf("page %d size %d: negative Start", page, size)
			}
		}
	}
}

func TestCalculateWindow_NoOverflow(t *testing.T) {
	t.Parallel()

	w := pagination.CalculateWindow(math.MaxInt, 50)
	if w.Start < 0 || w.End < w.Start {
		t.Fatalf("window overflowed: %+v", w)
	}
	if w.Size() != 50 {
		t.Fatalf("window size = %d, want 50", w.Size())
	}
}

// Benchmark tests
func BenchmarkCalculateOffset(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pagination.CalculateOffset(100, 20)
	}
}

func BenchmarkCalculateTotalPages(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pagination.CalculateTotalPages(10000, 20)
	}
}
