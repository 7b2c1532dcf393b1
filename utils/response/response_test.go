package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPage  int
		wantLimit int
		wantPages int
	}{
		{"exact fit", 1, 10, 100, 1, 10, 10},
		{"partial last page", 2, 10, 101, 2, 10, 11},
		{"zero total", 1, 10, 0, 1, 10, 0},
		{"page below one clamps", 0, 10, 50, 1, 10, 5},
		{"limit below one defaults", 1, 0, 50, 1, 10, 5},
		{"limit above cap clamps", 1, 500, 50, 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := CalculatePagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPage, meta.CurrentPage)
			assert.Equal(t, tt.wantLimit, meta.PerPage)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}
