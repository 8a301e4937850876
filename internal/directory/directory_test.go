package directory_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/jask/showcase/internal/dataset"
	"github.com/jask/showcase/internal/directory"
)

func TestDirectoryOptions(t *testing.T) {
	d := directory.New(dataset.Builtin())
	if d.Len() != 12 {
		t.Fatalf("len = %d", d.Len())
	}
	wantDepts := []string{"Engineering", "Finance", "HR", "IT", "Marketing", "Sales"}
	if got := d.Departments(); !slices.Equal(got, wantDepts) {
		t.Fatalf("departments = %v", got)
	}
	wantStatuses := []string{"Active", "Inactive", "On Leave"}
	if got := d.Statuses(); !slices.Equal(got, wantStatuses) {
		t.Fatalf("statuses = %v", got)
	}
}

func TestDirectoryIsIsolatedFromCaller(t *testing.T) {
	rows := dataset.Builtin()
	d := directory.New(rows)
	rows[0].Name = "Changed"
	out := d.Records()
	out[1].Name = "Also changed"
	if got := d.Records(); got[0].Name != "John Smith" || got[1].Name != "Sarah Johnson" {
		t.Fatalf("directory records mutated: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestApplyDefaultQuery(t *testing.T) {
	d := directory.New(dataset.Builtin())
	v := d.Apply(directory.NewQuery(5))
	if v.Total != 12 || v.TotalPages != 3 || v.Page != 1 {
		t.Fatalf("total=%d pages=%d page=%d", v.Total, v.TotalPages, v.Page)
	}
	if got := ids(v.Rows); !slices.Equal(got, []int{5, 4, 7, 8, 1}) {
		t.Fatalf("first page = %v", got)
	}
	if v.First() != 1 || v.Last() != 5 {
		t.Fatalf("showing %d to %d", v.First(), v.Last())
	}
	if v.HasPrev() || !v.HasNext() {
		t.Fatalf("prev=%v next=%v", v.HasPrev(), v.HasNext())
	}
}

func TestApplyLastPage(t *testing.T) {
	d := directory.New(dataset.Builtin())
	q := directory.NewQuery(5)
	q.GoTo(3)
	v := d.Apply(q)
	if len(v.Rows) != 2 {
		t.Fatalf("page 3 has %d rows", len(v.Rows))
	}
	if v.First() != 11 || v.Last() != 12 || v.HasNext() {
		t.Fatalf("showing %d to %d next=%v", v.First(), v.Last(), v.HasNext())
	}
	if !slices.Equal(v.Window, []int{1, 2, 3}) {
		t.Fatalf("window = %v", v.Window)
	}
}

func TestApplyClampsPageToResult(t *testing.T) {
	d := directory.New(dataset.Builtin())
	q := directory.NewQuery(5)
	q.GoTo(3)
	q.Department = "Engineering" // bypass the setter so the page is stale
	v := d.Apply(q)
	if v.Page != 1 || len(v.Rows) != 4 {
		t.Fatalf("page=%d rows=%d", v.Page, len(v.Rows))
	}
}

func TestApplyEmptyResult(t *testing.T) {
	d := directory.New(dataset.Builtin())
	q := directory.NewQuery(10)
	q.SetSearch("no such employee")
	v := d.Apply(q)
	if !v.Empty() || v.TotalPages != 0 || v.Page != 1 {
		t.Fatalf("empty=%v pages=%d page=%d", v.Empty(), v.TotalPages, v.Page)
	}
	if len(v.Rows) != 0 || len(v.Window) != 0 || v.First() != 0 || v.Last() != 0 {
		t.Fatalf("rows=%d window=%v first=%d last=%d", len(v.Rows), v.Window, v.First(), v.Last())
	}
}

func TestFilterChangesResetPage(t *testing.T) {
	mutators := map[string]func(*directory.Query){
		"search":     func(q *directory.Query) { q.SetSearch("a") },
		"department": func(q *directory.Query) { q.SetDepartment("HR") },
		"status":     func(q *directory.Query) { q.SetStatus("Active") },
		"clear":      func(q *directory.Query) { q.ClearFilters() },
		"page size": func(q *directory.Query) {
			if err := q.SetPageSize(10); err != nil {
				t.Fatalf("SetPageSize: %v", err)
			}
		},
	}
	for name, mutate := range mutators {
		q := directory.NewQuery(5)
		q.GoTo(3)
		mutate(&q)
		if q.Page != 1 {
			t.Fatalf("%s: page = %d, want 1", name, q.Page)
		}
	}
}

func TestSortChangeKeepsPage(t *testing.T) {
	q := directory.NewQuery(5)
	q.GoTo(2)
	q.ToggleSort(directory.FieldSalary)
	if q.Page != 2 {
		t.Fatalf("page = %d", q.Page)
	}
}

func TestToggleSort(t *testing.T) {
	q := directory.NewQuery(5)
	q.ToggleSort(directory.FieldName)
	if q.SortField != directory.FieldName || q.SortOrder != directory.Descending {
		t.Fatalf("same field toggle: %s %s", q.SortField, q.SortOrder)
	}
	q.ToggleSort(directory.FieldSalary)
	if q.SortField != directory.FieldSalary || q.SortOrder != directory.Ascending {
		t.Fatalf("new field: %s %s", q.SortField, q.SortOrder)
	}
}

func TestDoubleToggleRestoresStableAscending(t *testing.T) {
	d := directory.New(dataset.Builtin())
	q := directory.NewQuery(50)
	q.ToggleSort(directory.FieldDepartment)
	before := ids(d.Apply(q).Rows)

	q.ToggleSort(directory.FieldDepartment)
	q.ToggleSort(directory.FieldDepartment)
	after := ids(d.Apply(q).Rows)

	if q.SortOrder != directory.Ascending {
		t.Fatalf("order = %s", q.SortOrder)
	}
	if !slices.Equal(before, after) {
		t.Fatalf("before %v after %v", before, after)
	}
}

func TestSetPageSizeRejectsUnknownSizes(t *testing.T) {
	q := directory.NewQuery(5)
	q.GoTo(2)
	err := q.SetPageSize(7)
	if !errors.Is(err, directory.ErrInvalidPageSize) {
		t.Fatalf("err = %v", err)
	}
	if q.PageSize != 5 || q.Page != 2 {
		t.Fatalf("query changed on error: size=%d page=%d", q.PageSize, q.Page)
	}
	if got := directory.NewQuery(3).PageSize; got != directory.DefaultPageSize {
		t.Fatalf("NewQuery(3).PageSize = %d", got)
	}
}

func TestNextPageSizeCycles(t *testing.T) {
	size := 5
	var seen []int
	for range directory.PageSizes {
		size = directory.NextPageSize(size)
		seen = append(seen, size)
	}
	if !slices.Equal(seen, []int{10, 20, 50, 5}) {
		t.Fatalf("cycle = %v", seen)
	}
}

func TestHasFilters(t *testing.T) {
	q := directory.NewQuery(5)
	if q.HasFilters() {
		t.Fatal("fresh query reports filters")
	}
	q.SetStatus("Inactive")
	if !q.HasFilters() {
		t.Fatal("status filter not reported")
	}
	q.ClearFilters()
	if q.HasFilters() {
		t.Fatal("filters survived ClearFilters")
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := directory.ParseStatus(" On Leave "); err != nil || s != directory.StatusOnLeave {
		t.Fatalf("ParseStatus = %q, %v", s, err)
	}
	if _, err := directory.ParseStatus("Retired"); !errors.Is(err, directory.ErrInvalidStatus) {
		t.Fatalf("err = %v", err)
	}
}

func TestEmployeeInitials(t *testing.T) {
	e := directory.Employee{Name: "Patricia Thompson"}
	if got := e.Initials(); got != "PT" {
		t.Fatalf("initials = %q", got)
	}
}

func TestFormatter(t *testing.T) {
	f, err := directory.NewFormatter("en-US", "$", "")
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}
	if got := f.Salary(85000); got != "$85,000" {
		t.Fatalf("salary = %q", got)
	}
	if got := f.Date("2022-01-15"); got != "Jan 15, 2022" {
		t.Fatalf("date = %q", got)
	}
	if got := f.Date("soon"); got != "soon" {
		t.Fatalf("bad date = %q", got)
	}
	if _, err := directory.NewFormatter("not a locale!", "$", ""); err == nil {
		t.Fatal("expected locale parse error")
	}
}
