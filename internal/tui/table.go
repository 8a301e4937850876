package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/directory"
	"github.com/jask/showcase/internal/export"
)

type column struct {
	key   string
	title string
	field directory.Field
	width int
}

var columns = []column{
	{"0", "#", directory.FieldID, 5},
	{"1", "Employee", directory.FieldName, 24},
	{"2", "Email", directory.FieldEmail, 31},
	{"3", "Department", directory.FieldDepartment, 14},
	{"4", "Position", directory.FieldPosition, 22},
	{"5", "Salary", directory.FieldSalary, 11},
	{"6", "Hire Date", directory.FieldHireDate, 14},
	{"7", "Status", directory.FieldStatus, 12},
}

func sortFieldForKey(k string) (directory.Field, bool) {
	for _, c := range columns {
		if c.key == k {
			return c.field, true
		}
	}
	return "", false
}

type tableView struct {
	dir       *directory.Directory
	query     directory.Query
	search    textinput.Model
	searching bool
	format    *directory.Formatter
}

func newTableView(ui config.UIConfig, records []directory.Employee) (*tableView, error) {
	f, err := directory.NewFormatter(ui.Locale, ui.CurrencySymbol, ui.DateFormat)
	if err != nil {
		return nil, err
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search employees..."
	search.Width = 30
	return &tableView{
		dir:    directory.New(records),
		query:  directory.NewQuery(ui.PageSize),
		search: search,
		format: f,
	}, nil
}

// view derives the visible page from the current query.
func (t *tableView) view() directory.View {
	return t.dir.Apply(t.query)
}

// cycle steps through "" followed by options.
func cycle(options []string, current string, step int) string {
	all := append([]string{""}, options...)
	i := slices.Index(all, current)
	if i < 0 {
		i = 0
	}
	n := len(all)
	return all[((i+step)%n+n)%n]
}

func (a *App) handleTableKey(k tea.KeyMsg, b *Binding) tea.Cmd {
	t := a.tablev
	if t.searching {
		if b != nil && b.Action == actionClose {
			t.searching = false
			t.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		t.search, cmd = t.search.Update(k)
		t.query.SetSearch(t.search.Value())
		return cmd
	}
	if b == nil {
		return nil
	}

	v := t.view()
	switch b.Action {
	case actionSearch:
		t.searching = true
		return t.search.Focus()
	case actionDeptNext, actionDeptPrev:
		step := 1
		if b.Action == actionDeptPrev {
			step = -1
		}
		t.query.SetDepartment(cycle(t.dir.Departments(), t.query.Department, step))
	case actionStatusNext, actionStatusPrev:
		step := 1
		if b.Action == actionStatusPrev {
			step = -1
		}
		t.query.SetStatus(cycle(t.dir.Statuses(), t.query.Status, step))
	case actionClearFilters:
		if !t.query.HasFilters() {
			return nil
		}
		t.query.ClearFilters()
		t.search.SetValue("")
		a.status = "filters cleared"
	case actionSort:
		if f, ok := sortFieldForKey(k.String()); ok {
			t.query.ToggleSort(f)
		}
	case actionPrevPage:
		if v.HasPrev() {
			t.query.GoTo(v.Page - 1)
		}
	case actionNextPage:
		if v.HasNext() {
			t.query.GoTo(v.Page + 1)
		}
	case actionFirstPage:
		t.query.GoTo(1)
	case actionLastPage:
		t.query.GoTo(v.TotalPages)
	case actionPageSize:
		if err := t.query.SetPageSize(directory.NextPageSize(t.query.PageSize)); err != nil {
			return func() tea.Msg { return errMsg{err} }
		}
	case actionExport:
		return a.exportCmd(v.Sorted)
	}
	a.log.Debug("table query",
		"search", t.query.Search,
		"department", t.query.Department,
		"status", t.query.Status,
		"sort", t.query.SortField,
		"order", t.query.SortOrder,
		"page", t.query.Page,
		"page_size", t.query.PageSize)
	return nil
}

func (a *App) exportCmd(rows []directory.Employee) tea.Cmd {
	dir := a.cfg.Export.Dir
	now := a.now()
	return func() tea.Msg {
		path, err := export.WriteCSV(dir, rows, now)
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{path: path, rows: len(rows)}
	}
}

func (a *App) renderTable() string {
	t := a.tablev
	v := t.view()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Employee Directory") + "\n")
	b.WriteString(descStyle.Render("Manage and view employee information") + "\n\n")
	b.WriteString(t.renderFilters() + "\n\n")
	b.WriteString(t.renderHeaderRow() + "\n")

	if v.Empty() {
		b.WriteString("\n" + labelStyle.Render("No results found") + "\n")
		b.WriteString(mutedStyle.Render("Try adjusting your search or filter criteria"))
		return b.String()
	}
	for _, e := range v.Rows {
		b.WriteString(t.renderRow(e) + "\n")
	}
	b.WriteString("\n" + renderPagination(v))
	return b.String()
}

func (t *tableView) renderFilters() string {
	dept := t.query.Department
	if dept == "" {
		dept = "All Departments"
	}
	status := t.query.Status
	if status == "" {
		status = "All Status"
	}
	parts := []string{
		t.search.View(),
		mutedStyle.Render("Department:") + " " + labelStyle.Render(dept),
		mutedStyle.Render("Status:") + " " + labelStyle.Render(status),
	}
	if t.query.HasFilters() {
		parts = append(parts, mutedStyle.Render("(c to clear)"))
	}
	return strings.Join(parts, "   ")
}

func (t *tableView) renderHeaderRow() string {
	cells := make([]string, 0, len(columns))
	for _, c := range columns {
		title := c.key + " " + c.title
		if t.query.SortField == c.field {
			if t.query.SortOrder == directory.Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		cells = append(cells, cell(title, c.width))
	}
	return tableHeaderStyle.Render(strings.Join(cells, " "))
}

func (t *tableView) renderRow(e directory.Employee) string {
	values := []string{
		strconv.Itoa(e.ID),
		avatarStyle.Render(e.Initials()) + " " + e.Name,
		e.Email,
		e.Department,
		e.Position,
		salaryStyle.Render(t.format.Salary(e.Salary)),
		t.format.Date(e.HireDate),
		statusBadge(string(e.Status)),
	}
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = cell(values[i], c.width)
	}
	return strings.Join(cells, " ")
}

func renderPagination(v directory.View) string {
	summary := fmt.Sprintf("Showing %d to %d of %d results", v.First(), v.Last(), v.Total)
	size := mutedStyle.Render(fmt.Sprintf("Rows per page: %d", v.PageSize))

	prev := pageStyle.Render("‹ Prev")
	if !v.HasPrev() {
		prev = disabledStyle.Padding(0, 1).Render("‹ Prev")
	}
	next := pageStyle.Render("Next ›")
	if !v.HasNext() {
		next = disabledStyle.Padding(0, 1).Render("Next ›")
	}
	pages := []string{prev}
	for _, p := range v.Window {
		if p == v.Page {
			pages = append(pages, currentPageStyle.Render(strconv.Itoa(p)))
		} else {
			pages = append(pages, pageStyle.Render(strconv.Itoa(p)))
		}
	}
	pages = append(pages, next)
	return summary + "   " + size + "\n" + strings.Join(pages, "")
}

// cell truncates s to width cells and pads it.
func cell(s string, width int) string {
	return padRight(ansi.Truncate(s, width, "…"), width)
}
