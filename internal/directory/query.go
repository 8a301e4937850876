package directory

import (
	"errors"
	"fmt"
	"slices"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// PageSizes are the only page sizes a query accepts.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used when no valid size is supplied.
const DefaultPageSize = 5

// ErrInvalidPageSize is returned for sizes outside PageSizes.
var ErrInvalidPageSize = errors.New("invalid page size")

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// NextPageSize returns the page size following n in PageSizes, wrapping around.
func NextPageSize(n int) int {
	i := slices.Index(PageSizes, n)
	return PageSizes[(i+1)%len(PageSizes)]
}

// Query is the user-controlled state of the table view. The zero value is not
// ready for use; start from NewQuery.
type Query struct {
	Search     string
	SortField  Field
	SortOrder  Order
	Page       int
	PageSize   int
	Department string // empty = all departments
	Status     string // empty = all statuses
}

// NewQuery returns the initial query: sorted by name ascending, first page.
func NewQuery(pageSize int) Query {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return Query{
		SortField: FieldName,
		SortOrder: Ascending,
		Page:      1,
		PageSize:  pageSize,
	}
}

// SetSearch replaces the search term and returns to the first page.
func (q *Query) SetSearch(term string) {
	if term == q.Search {
		return
	}
	q.Search = term
	q.Page = 1
}

// SetDepartment sets (or clears, with "") the department filter.
func (q *Query) SetDepartment(dept string) {
	q.Department = dept
	q.Page = 1
}

// SetStatus sets (or clears, with "") the status filter.
func (q *Query) SetStatus(status string) {
	q.Status = status
	q.Page = 1
}

// HasFilters reports whether any filter narrows the result.
func (q Query) HasFilters() bool {
	return q.Search != "" || q.Department != "" || q.Status != ""
}

// ClearFilters drops search, department and status filters.
func (q *Query) ClearFilters() {
	q.Search = ""
	q.Department = ""
	q.Status = ""
	q.Page = 1
}

// ToggleSort flips the order when f is already the sort field, otherwise sorts
// by f ascending.
func (q *Query) ToggleSort(f Field) {
	if f == q.SortField {
		if q.SortOrder == Ascending {
			q.SortOrder = Descending
		} else {
			q.SortOrder = Ascending
		}
		return
	}
	q.SortField = f
	q.SortOrder = Ascending
}

// SetPageSize changes the page size and returns to the first page.
func (q *Query) SetPageSize(n int) error {
	if !ValidPageSize(n) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	q.PageSize = n
	q.Page = 1
	return nil
}

// GoTo moves to page n. The page is clamped against the result size when the
// query is applied.
func (q *Query) GoTo(n int) {
	q.Page = max(n, 1)
}
