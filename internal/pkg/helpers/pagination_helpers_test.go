package helpers

import "testing"

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(23, 3, 10)

	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages for 23 items at size 10, got %d", info.TotalPages)
	}
	if info.CurrentPage != 3 {
		t.Errorf("expected current page 3, got %d", info.CurrentPage)
	}
	if info.TotalItems != 23 {
		t.Errorf("expected 23 total items, got %d", info.TotalItems)
	}
	if info.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", info.PageSize)
	}
}

func TestNewPaginationInfoEmpty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)

	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page for empty first page, got %d", info.TotalPages)
	}
	if info.CurrentPage != 1 {
		t.Errorf("expected current page 1, got %d", info.CurrentPage)
	}
}

func TestNewPaginationInfoClampsCurrentPage(t *testing.T) {
	info := NewPaginationInfo(10, 5, 10)

	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", info.TotalPages)
	}
	if info.CurrentPage != 1 {
		t.Errorf("expected current page clamped to 1, got %d", info.CurrentPage)
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"oversized page size falls back", 2, 500, 10, DefaultPageSize},
		{"zero size falls back", 2, 0, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}
