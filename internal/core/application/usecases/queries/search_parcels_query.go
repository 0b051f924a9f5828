package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrSearchParcelsQueryIsNotConstructed = errors.New(
		"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
	)
	ErrKeywordIsRequired = errors.New("search keyword is required")
)

// SearchParcelsQuery finds parcels whose description or destination city
// contains the keyword, case-insensitively. A page with no matches is a
// successful empty result, not an error.
type SearchParcelsQuery struct {
	keyword string
	page    int
	size    int

	guard guard.ConstructorGuard
}

// NewSearchParcelsQuery creates a keyword search query.
func NewSearchParcelsQuery(keyword string, page, size int) (SearchParcelsQuery, error) {
	if keyword == "" {
		return SearchParcelsQuery{}, ErrKeywordIsRequired
	}
	if err := validatePaging(page, size); err != nil {
		return SearchParcelsQuery{}, err
	}

	return SearchParcelsQuery{
		keyword: keyword,
		page:    page,
		size:    size,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// Keyword returns the search keyword.
func (q SearchParcelsQuery) Keyword() string {
	return q.keyword
}

// Page returns the zero-based page index.
func (q SearchParcelsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q SearchParcelsQuery) Size() int {
	return q.size
}
