package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// KeyRegistry maps key names to actions per scope. Lookups fall back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeMenu   = "menu"
	scopeForm   = "form"
	scopeInput  = "form_input"
	scopeTable  = "table"
	scopeSearch = "search"
)

const (
	actionQuit         Action = "quit"
	actionMenu         Action = "menu"
	actionShowForm     Action = "show_form"
	actionShowTable    Action = "show_table"
	actionNavigate     Action = "navigate"
	actionSelect       Action = "select"
	actionClose        Action = "close"
	actionNextField    Action = "next_field"
	actionPrevField    Action = "prev_field"
	actionTogglePass   Action = "toggle_password"
	actionSubmit       Action = "submit"
	actionBlur         Action = "blur"
	actionFocus        Action = "focus"
	actionSearch       Action = "search"
	actionDeptNext     Action = "department_next"
	actionDeptPrev     Action = "department_prev"
	actionStatusNext   Action = "status_next"
	actionStatusPrev   Action = "status_prev"
	actionClearFilters Action = "clear_filters"
	actionSort         Action = "sort"
	actionPrevPage     Action = "prev_page"
	actionNextPage     Action = "next_page"
	actionFirstPage    Action = "first_page"
	actionLastPage     Action = "last_page"
	actionPageSize     Action = "page_size"
	actionExport       Action = "export"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(scope, Binding{Action: action, Keys: keys, Help: help})
	}

	reg(scopeGlobal, actionShowForm, []string{"f1"}, "form")
	reg(scopeGlobal, actionShowTable, []string{"f2"}, "table")
	reg(scopeGlobal, actionMenu, []string{"m"}, "menu")
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeMenu, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeMenu, actionSelect, []string{"enter"}, "open")
	reg(scopeMenu, actionClose, []string{"esc", "m"}, "close")

	// Form with a field being edited: only chorded keys, everything else is text.
	reg(scopeInput, actionNextField, []string{"tab", "down"}, "next")
	reg(scopeInput, actionPrevField, []string{"shift+tab", "up"}, "prev")
	reg(scopeInput, actionTogglePass, []string{"ctrl+p"}, "show/hide password")
	reg(scopeInput, actionSubmit, []string{"ctrl+s"}, "submit")
	reg(scopeInput, actionBlur, []string{"esc"}, "done editing")
	reg(scopeInput, actionShowForm, []string{"f1"}, "form")
	reg(scopeInput, actionShowTable, []string{"f2"}, "table")

	// Form with no field focused.
	reg(scopeForm, actionFocus, []string{"enter", "tab", "j", "down"}, "edit")
	reg(scopeForm, actionPrevField, []string{"shift+tab", "k", "up"}, "edit prev")
	reg(scopeForm, actionSubmit, []string{"ctrl+s"}, "submit")
	reg(scopeForm, actionMenu, []string{"m"}, "menu")
	reg(scopeForm, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeTable, actionSearch, []string{"/"}, "search")
	reg(scopeTable, actionDeptNext, []string{"d"}, "department")
	reg(scopeTable, actionDeptPrev, []string{"D"}, "department back")
	reg(scopeTable, actionStatusNext, []string{"s"}, "status")
	reg(scopeTable, actionStatusPrev, []string{"S"}, "status back")
	reg(scopeTable, actionClearFilters, []string{"c"}, "clear")
	reg(scopeTable, actionSort, []string{"0-7", "0", "1", "2", "3", "4", "5", "6", "7"}, "sort")
	reg(scopeTable, actionPrevPage, []string{"h/l", "h", "left"}, "page")
	reg(scopeTable, actionNextPage, []string{"l", "right"}, "")
	reg(scopeTable, actionFirstPage, []string{"g"}, "first")
	reg(scopeTable, actionLastPage, []string{"G"}, "last")
	reg(scopeTable, actionPageSize, []string{"p"}, "rows")
	reg(scopeTable, actionExport, []string{"e"}, "export")
	reg(scopeTable, actionMenu, []string{"m"}, "menu")
	reg(scopeTable, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeSearch, actionClose, []string{"esc", "enter"}, "done")
	reg(scopeSearch, actionShowForm, []string{"f1"}, "form")
	reg(scopeSearch, actionShowTable, []string{"f2"}, "table")

	return r
}

// Register adds b to scope. Keys already bound in the scope are not rebound.
func (r *KeyRegistry) Register(scope string, b Binding) {
	scope = strings.TrimSpace(scope)
	keys := normalizeKeyList(b.Keys)
	if scope == "" || len(keys) == 0 || r.scopeHasAnyKey(scope, keys) {
		return
	}
	if _, ok := r.indexByScope[scope]; !ok {
		r.indexByScope[scope] = make(map[string]*Binding)
	}
	copyBinding := b
	copyBinding.Keys = keys
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
	for _, k := range keys {
		r.indexByScope[scope][k] = &copyBinding
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key in scope. The global scope is consulted only for
// scopes that do not capture text.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope == scopeInput || scope == scopeSearch {
		return nil
	}
	return r.lookupInScope(keyName, scopeGlobal)
}

// HelpBindings returns footer hints for scope. Bindings without help text are
// folded into a neighbour's hint and skipped.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		// Single runes keep their case so d and D can differ.
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
