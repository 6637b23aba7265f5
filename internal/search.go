package internal

import (
	"math"
	"strings"
	"unicode"
)

// SearchParams defines the arguments used for listing records a page at a time.
type SearchParams struct {
	Term string
	Page int
	Size int
}

// Words splits the search term on whitespace and commas, every word must match at least one searched field.
func (p SearchParams) Words() []string {
	return strings.FieldsFunc(p.Term, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Offset returns the number of records preceding the requested page.
func (p SearchParams) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Size
}

// Validate indicates whether the page arguments are usable.
func (p SearchParams) Validate() error {
	if p.Page < 1 {
		return NewErrorf(ErrorCodeNotFound, "invalid page")
	}

	if p.Size < 1 || p.Size > math.MaxInt32 {
		return NewErrorf(ErrorCodeInvalidArgument, "invalid page size")
	}

	if p.Page-1 > math.MaxInt32/p.Size {
		return NewErrorf(ErrorCodeNotFound, "invalid page")
	}

	return nil
}

// ValidatePage indicates whether the requested page exists given the total number of records.
func (p SearchParams) ValidatePage(total int64) error {
	if p.Page < 1 || (p.Page > 1 && int64(p.Offset()) >= total) {
		return NewErrorf(ErrorCodeNotFound, "invalid page")
	}

	return nil
}
