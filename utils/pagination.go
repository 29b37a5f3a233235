package utils

import (
	"math"
	"strconv"
)

// DefaultPerPage matches the storefront's page size.
const DefaultPerPage = 20

// MaxPerPage caps per_page so a caller cannot request unbounded pages.
const MaxPerPage = 100

// Pagination describes one page of a list response.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// ParsePageParams parses page/per_page query values, applying defaults
// and clamping out-of-range input instead of erroring.
func ParsePageParams(pageStr, perPageStr string) (page, perPage int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	perPage, _ = strconv.Atoi(perPageStr)
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// NewPagination computes the page envelope for a total row count.
func NewPagination(total int64, page, perPage int) Pagination {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
		HasNext:     page < pages,
		HasPrev:     page > 1,
	}
}

// Offset converts a page number to a row offset.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}
