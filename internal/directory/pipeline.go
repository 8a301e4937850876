package directory

import (
	"cmp"
	"slices"
	"strings"
)

// Filter returns the records matching the search term and the optional
// department and status filters, in their original order.
func Filter(records []Employee, search, department, status string) []Employee {
	term := strings.ToLower(search)
	out := make([]Employee, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, term) {
			continue
		}
		if department != "" && r.Department != department {
			continue
		}
		if status != "" && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch expects term already lower-cased.
func matchesSearch(r Employee, term string) bool {
	if term == "" {
		return true
	}
	for _, f := range Fields {
		if strings.Contains(strings.ToLower(r.Value(f)), term) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of records. Equal keys keep their input
// order in both directions.
func Sort(records []Employee, field Field, order Order) []Employee {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Employee) int {
		c := compareField(a, b, field)
		if order == Descending {
			return -c
		}
		return c
	})
	return out
}

func compareField(a, b Employee, field Field) int {
	switch field {
	case FieldID:
		return cmp.Compare(a.ID, b.ID)
	case FieldSalary:
		return cmp.Compare(a.Salary, b.Salary)
	case FieldHireDate:
		return cmp.Compare(a.HireDate, b.HireDate)
	default:
		return cmp.Compare(strings.ToLower(a.Value(field)), strings.ToLower(b.Value(field)))
	}
}

// TotalPages is ceil(n/size); zero for an empty result.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage keeps page within [1, totalPages], or 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	return min(page, totalPages)
}

// Paginate returns the slice for the 1-based page.
func Paginate(records []Employee, page, size int) []Employee {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(records) {
		return nil
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// PageWindowSize is the maximum number of page buttons shown.
const PageWindowSize = 5

// PageWindow returns the page numbers to display: at most PageWindowSize,
// centred on the current page except near either end.
func PageWindow(page, totalPages int) []int {
	n := min(PageWindowSize, totalPages)
	if n <= 0 {
		return nil
	}
	var first int
	switch {
	case totalPages <= PageWindowSize, page <= 3:
		first = 1
	case page >= totalPages-2:
		first = totalPages - PageWindowSize + 1
	default:
		first = page - 2
	}
	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}
