package api

import (
	"testing"
)

func TestNewPaginationMetaComputesTotalPages(t *testing.T) {
	cases := []struct {
		total      int
		limit      int
		totalPages int
	}{
		{total: 0, limit: 10, totalPages: 0},
		{total: 1, limit: 10, totalPages: 1},
		{total: 10, limit: 10, totalPages: 1},
		{total: 11, limit: 10, totalPages: 2},
		{total: 42, limit: 20, totalPages: 3},
		{total: 100, limit: 1, totalPages: 100},
		{total: 5, limit: 0, totalPages: 0},
	}
	for _, c := range cases {
		meta := NewPaginationMeta(1, c.limit, c.total)
		if meta.TotalPages != c.totalPages {
			t.Errorf("total=%d limit=%d: expected totalPages %d, got %d", c.total, c.limit, c.totalPages, meta.TotalPages)
		}
		if err := meta.Validate(); err != nil {
			t.Errorf("total=%d limit=%d: expected valid meta, got %v", c.total, c.limit, err)
		}
	}
}

func TestPaginationMetaValidateRejectsMismatch(t *testing.T) {
	meta := &PaginationMeta{Page: 1, Limit: 10, Total: 25, TotalPages: 2}
	if err := meta.Validate(); err == nil {
		t.Errorf("expected totalPages mismatch error, got nil")
	}

	meta = &PaginationMeta{Page: -1, Limit: 10, Total: 0, TotalPages: 0}
	if err := meta.Validate(); err == nil {
		t.Errorf("expected non-negative error for page=-1, got nil")
	}
}

func TestSortOrderValidate(t *testing.T) {
	for _, order := range []SortOrder{"", SortAsc, SortDesc} {
		if err := order.Validate(); err != nil {
			t.Errorf("expected %q to be valid, got %v", order, err)
		}
	}
	if err := SortOrder("ascending").Validate(); err == nil {
		t.Errorf("expected error for invalid sort order, got nil")
	}
}

func TestPaginationParamsNormalize(t *testing.T) {
	params := PaginationParams{}.Normalize()
	if params.Page != DefaultPage {
		t.Errorf("expected default page %d, got %d", DefaultPage, params.Page)
	}
	if params.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, params.Limit)
	}

	params = PaginationParams{Page: 3, Limit: 500}.Normalize()
	if params.Page != 3 {
		t.Errorf("expected page 3 preserved, got %d", params.Page)
	}
	if params.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, params.Limit)
	}
}

func TestPaginationParamsQuery(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 50, SortBy: "name", SortOrder: SortDesc}
	query := params.Query()
	if got := query.Encode(); got != "limit=50&page=2&sortBy=name&sortOrder=desc" {
		t.Errorf("unexpected query encoding: %s", got)
	}

	empty := PaginationParams{}.Query()
	if len(empty) != 0 {
		t.Errorf("expected empty query for zero params, got %v", empty)
	}
}
