// Package directory holds the employee table core: a fixed in-memory record
// set and the filter -> sort -> paginate pipeline that derives every view of it.
//
// Views are recomputed from the current Query on demand; nothing derived is
// cached as state.
package directory

import (
	"slices"
	"sort"
)

// Directory is an immutable collection of employees.
type Directory struct {
	records     []Employee
	departments []string
	statuses    []string
}

// New copies records into a Directory.
func New(records []Employee) *Directory {
	d := &Directory{records: slices.Clone(records)}
	d.departments = distinct(d.records, func(e Employee) string { return e.Department })
	d.statuses = distinct(d.records, func(e Employee) string { return string(e.Status) })
	return d
}

func distinct(records []Employee, key func(Employee) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.records) }

// Records returns a copy of the records in load order.
func (d *Directory) Records() []Employee { return slices.Clone(d.records) }

// Departments returns the distinct departments, sorted.
func (d *Directory) Departments() []string { return slices.Clone(d.departments) }

// Statuses returns the distinct statuses present, sorted.
func (d *Directory) Statuses() []string { return slices.Clone(d.statuses) }

// View is one derived page of the directory.
type View struct {
	Rows       []Employee // current page
	Sorted     []Employee // every match, sorted, unpaginated
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	Window     []int
}

// Empty reports whether nothing matched. An empty view is a normal state.
func (v View) Empty() bool { return v.Total == 0 }

// First is the 1-based index of the first row on the page, 0 when empty.
func (v View) First() int {
	if v.Empty() {
		return 0
	}
	return (v.Page-1)*v.PageSize + 1
}

// Last is the 1-based index of the last row on the page.
func (v View) Last() int {
	return min(v.Page*v.PageSize, v.Total)
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool { return v.Page > 1 }

// HasNext reports whether a following page exists.
func (v View) HasNext() bool { return v.Page < v.TotalPages }

// Apply runs the pipeline for q. The returned view's Page is q.Page clamped
// to the available pages.
func (d *Directory) Apply(q Query) View {
	size := q.PageSize
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	filtered := Filter(d.records, q.Search, q.Department, q.Status)
	sorted := Sort(filtered, q.SortField, q.SortOrder)
	total := TotalPages(len(sorted), size)
	page := ClampPage(q.Page, total)
	return View{
		Rows:       Paginate(sorted, page, size),
		Sorted:     sorted,
		Total:      len(sorted),
		Page:       page,
		PageSize:   size,
		TotalPages: total,
		Window:     PageWindow(page, total),
	}
}
