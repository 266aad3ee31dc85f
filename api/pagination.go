package api

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationMeta reports server-side paging facts alongside list
// payloads. Invariant: TotalPages == ceil(Total/Limit) when Limit > 0.
type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta computes TotalPages from total and limit. A
// non-positive limit yields zero total pages.
func NewPaginationMeta(page int, limit int, total int) *PaginationMeta {
	var totalPages int
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (p *PaginationMeta) Validate() error {
	if p.Page < 0 || p.Limit < 0 || p.Total < 0 || p.TotalPages < 0 {
		return fmt.Errorf("pagination fields must be non-negative: %+v", *p)
	}
	if p.Limit > 0 {
		want := (p.Total + p.Limit - 1) / p.Limit
		if p.TotalPages != want {
			return fmt.Errorf("totalPages mismatch: got %d, want %d for total=%d limit=%d", p.TotalPages, want, p.Total, p.Limit)
		}
	}
	return nil
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (s SortOrder) Validate() error {
	switch s {
	case "", SortAsc, SortDesc:
		return nil
	}
	return fmt.Errorf("invalid sort order: %q", string(s))
}

// PaginationParams is the request-side paging filter. All fields are
// optional; only the sort order enum is constrained.
type PaginationParams struct {
	Page      int       `json:"page,omitempty"`
	Limit     int       `json:"limit,omitempty"`
	SortBy    string    `json:"sortBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

func (p PaginationParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page must be non-negative: %d", p.Page)
	}
	if p.Limit < 0 {
		return fmt.Errorf("limit must be non-negative: %d", p.Limit)
	}
	return p.SortOrder.Validate()
}

// Normalize fills in defaults and caps the limit, leaving sort fields
// untouched.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Query encodes the params as URL query values for a consuming client.
func (p PaginationParams) Query() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		values.Set("sortOrder", string(p.SortOrder))
	}
	return values
}
