package paging

import (
	"errors"
	"fmt"
)

// Allowed page sizes for list screens.
var PageSizes = []int{10, 20, 30, 40, 50}

const (
	DefaultPageSize   = 20
	DefaultPageNumber = 1
)

var ErrInconsistent = errors.New("inconsistent paging envelope")

// Paging is the envelope returned next to every paginated list.
type Paging struct {
	Count      int  `json:"count"`
	PageSize   int  `json:"page_size"`
	PageNumber int  `json:"page_number"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	FirstPage  bool `json:"first_page"`
	LastPage   bool `json:"last_page"`
}

// Validate checks the envelope invariants. An empty result (TotalPages == 0) is always valid.
func (p Paging) Validate() error {
	if p.TotalPages < 0 || p.TotalCount < 0 || p.Count < 0 {
		return fmt.Errorf("%w: negative counters", ErrInconsistent)
	}
	if p.TotalPages == 0 {
		return nil
	}
	if p.PageNumber < 1 || p.PageNumber > p.TotalPages {
		return fmt.Errorf("%w: page_number %d outside [1, %d]", ErrInconsistent, p.PageNumber, p.TotalPages)
	}
	if p.FirstPage != (p.PageNumber == 1) {
		return fmt.Errorf("%w: first_page=%t on page %d", ErrInconsistent, p.FirstPage, p.PageNumber)
	}
	if p.LastPage != (p.PageNumber == p.TotalPages) {
		return fmt.Errorf("%w: last_page=%t on page %d of %d", ErrInconsistent, p.LastPage, p.PageNumber, p.TotalPages)
	}
	return nil
}

// PageAfterDelete returns the page to show after one row was deleted from pageNumber.
// before is the envelope of that page prior to the delete. Removing the only row of a
// non-first page moves back one page.
func PageAfterDelete(pageNumber int, before Paging) int {
	if pageNumber > 1 && before.Count <= 1 && pageNumber >= before.TotalPages {
		return pageNumber - 1
	}
	return pageNumber
}

// NormalizeSize falls back to DefaultPageSize for sizes outside PageSizes.
func NormalizeSize(size int) int {
	for _, s := range PageSizes {
		if s == size {
			return size
		}
	}
	return DefaultPageSize
}

// NormalizeNumber falls back to DefaultPageNumber for non-positive numbers.
func NormalizeNumber(number int) int {
	if number < 1 {
		return DefaultPageNumber
	}
	return number
}
