package directory_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/jask/showcase/internal/dataset"
	"github.com/jask/showcase/internal/directory"
)

func ids(rows []directory.Employee) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func synthetic(n int) []directory.Employee {
	out := make([]directory.Employee, n)
	for i := range out {
		out[i] = directory.Employee{
			ID:         i + 1,
			Name:       fmt.Sprintf("Person %02d", i+1),
			Department: []string{"Ops", "Sales", "Ops"}[i%3],
			Salary:     1000 * (i % 4),
			HireDate:   "2024-01-01",
			Status:     directory.StatusActive,
		}
	}
	return out
}

func TestFilterSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	rows := dataset.Builtin()
	cases := []struct {
		term string
		want []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"eng", []int{1, 3, 6, 9}},
		{"ON LEAVE", []int{4}},
		{"2021", []int{2, 5, 9, 10, 12}},
		{"85000", []int{1}},
		{"@company.com", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"zzz", []int{}},
	}
	for _, tc := range cases {
		got := ids(directory.Filter(rows, tc.term, "", ""))
		if !slices.Equal(got, tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestFilterDepartmentAndStatusCombine(t *testing.T) {
	rows := dataset.Builtin()
	got := ids(directory.Filter(rows, "", "Engineering", ""))
	if !slices.Equal(got, []int{1, 3, 6, 9}) {
		t.Fatalf("engineering = %v", got)
	}
	got = ids(directory.Filter(rows, "", "Engineering", "Inactive"))
	if !slices.Equal(got, []int{6}) {
		t.Fatalf("engineering+inactive = %v", got)
	}
	got = ids(directory.Filter(rows, "developer", "Engineering", "Active"))
	if !slices.Equal(got, []int{1, 3, 9}) {
		t.Fatalf("developer in engineering = %v", got)
	}
	if got := directory.Filter(rows, "", "Legal", ""); len(got) != 0 {
		t.Fatalf("unknown department matched %d rows", len(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	rows := dataset.Builtin()
	terms := []string{"", "a", "e", "eng", "manager", "2022", "0", "on", "HR", "xyz"}
	for _, term := range terms {
		once := directory.Filter(rows, term, "", "")
		twice := directory.Filter(once, term, "", "")
		if !slices.Equal(ids(once), ids(twice)) {
			t.Fatalf("term %q: %v then %v", term, ids(once), ids(twice))
		}
	}
}

func TestSortByNameAscending(t *testing.T) {
	got := ids(directory.Sort(dataset.Builtin(), directory.FieldName, directory.Ascending))
	want := []int{5, 4, 7, 8, 1, 6, 10, 3, 12, 9, 2, 11}
	if !slices.Equal(got, want) {
		t.Fatalf("name asc = %v, want %v", got, want)
	}
}

func TestSortIsStableInBothDirections(t *testing.T) {
	rows := dataset.Builtin()
	asc := ids(directory.Sort(rows, directory.FieldDepartment, directory.Ascending))
	wantAsc := []int{1, 3, 6, 9, 7, 4, 12, 11, 2, 8, 5, 10}
	if !slices.Equal(asc, wantAsc) {
		t.Fatalf("department asc = %v, want %v", asc, wantAsc)
	}
	desc := ids(directory.Sort(rows, directory.FieldDepartment, directory.Descending))
	wantDesc := []int{5, 10, 2, 8, 11, 4, 12, 7, 1, 3, 6, 9}
	if !slices.Equal(desc, wantDesc) {
		t.Fatalf("department desc = %v, want %v", desc, wantDesc)
	}
}

func TestSortNumericField(t *testing.T) {
	got := ids(directory.Sort(dataset.Builtin(), directory.FieldSalary, directory.Ascending))
	want := []int{4, 8, 5, 7, 3, 11, 2, 9, 6, 12, 10, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("salary asc = %v, want %v", got, want)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := dataset.Builtin()
	_ = directory.Sort(rows, directory.FieldSalary, directory.Descending)
	if !slices.Equal(ids(rows), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}) {
		t.Fatalf("input reordered: %v", ids(rows))
	}
}

func TestPageCountsForAllSizes(t *testing.T) {
	for _, size := range directory.PageSizes {
		for n := 0; n <= 120; n++ {
			rows := synthetic(n)
			pages := directory.TotalPages(n, size)
			if want := (n + size - 1) / size; pages != want {
				t.Fatalf("n=%d size=%d pages=%d want %d", n, size, pages, want)
			}
			if n == 0 {
				continue
			}
			last := directory.Paginate(rows, pages, size)
			wantLast := n % size
			if wantLast == 0 {
				wantLast = size
			}
			if len(last) != wantLast {
				t.Fatalf("n=%d size=%d last page has %d rows, want %d", n, size, len(last), wantLast)
			}
		}
	}
}

func TestPaginateTwelveByFive(t *testing.T) {
	rows := dataset.Builtin()
	var sizes []int
	for page := 1; page <= directory.TotalPages(len(rows), 5); page++ {
		sizes = append(sizes, len(directory.Paginate(rows, page, 5)))
	}
	if !slices.Equal(sizes, []int{5, 5, 2}) {
		t.Fatalf("page sizes = %v", sizes)
	}
	if got := directory.Paginate(rows, 4, 5); got != nil {
		t.Fatalf("page past the end returned %d rows", len(got))
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page, total int
		want        []int
	}{
		{1, 0, nil},
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{4, 10, []int{2, 3, 4, 5, 6}},
		{7, 10, []int{5, 6, 7, 8, 9}},
		{8, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{5, 5, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		got := directory.PageWindow(tc.page, tc.total)
		if !slices.Equal(got, tc.want) {
			t.Fatalf("PageWindow(%d, %d) = %v, want %v", tc.page, tc.total, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct{ page, total, want int }{
		{1, 0, 1},
		{5, 0, 1},
		{0, 3, 1},
		{2, 3, 2},
		{9, 3, 3},
	}
	for _, tc := range cases {
		if got := directory.ClampPage(tc.page, tc.total); got != tc.want {
			t.Fatalf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.want)
		}
	}
}
