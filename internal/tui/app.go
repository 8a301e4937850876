// Package tui is the terminal front end: a component selector hosting the
// registration form and the employee directory.
package tui

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/directory"
	"github.com/jask/showcase/internal/logger"
)

type component int

const (
	componentForm component = iota
	componentTable
)

type componentInfo struct {
	name        string
	description string
}

var components = []componentInfo{
	componentForm:  {"Component 1: Input Field", "Advanced form input with validation"},
	componentTable: {"Component 2: Data Table", "Professional data table with advanced features"},
}

const appName = "Showcase"

// App ties together the component views.
type App struct {
	cfg    config.Config
	log    *slog.Logger
	keys   *KeyRegistry
	now    func() time.Time
	active component
	status string
	width  int
	height int

	menuOpen   bool
	menuCursor int

	formv  *formView
	tablev *tableView
}

// New builds the application over a loaded record set.
func New(cfg config.Config, records []directory.Employee, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logger.New()
	}
	tv, err := newTableView(cfg.UI, records)
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		log:    log,
		keys:   NewKeyRegistry(),
		now:    time.Now,
		formv:  newFormView(),
		tablev: tv,
	}
	if cfg.UI.StartView == config.ViewTable {
		a.active = componentTable
	} else {
		a.formv.focusField(0)
	}
	return a, nil
}

func (a *App) Init() tea.Cmd {
	if a.active == componentForm {
		return textinput.Blink
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.log.Error("command failed", "err", m.error)
		a.status = "error: " + m.Error()
	case submitDoneMsg:
		return a, a.completeSubmit(m.reference)
	case formResetMsg:
		return a, a.resetForm()
	case exportDoneMsg:
		a.log.Info("exported employees", "path", m.path, "rows", m.rows)
		a.status = "exported " + plural(m.rows, "row") + " to " + m.path
	default:
		// cursor blinks and other component traffic
		if a.active == componentForm {
			return a, a.formv.updateFocused(msg)
		}
		if a.tablev.searching {
			var cmd tea.Cmd
			a.tablev.search, cmd = a.tablev.search.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleKey(k tea.KeyMsg) tea.Cmd {
	if k.String() == "ctrl+c" {
		return tea.Quit
	}
	scope := a.scope()
	b := a.keys.Lookup(k.String(), scope)
	if a.menuOpen {
		return a.handleMenuKey(k, b)
	}
	if b != nil {
		switch b.Action {
		case actionQuit:
			return tea.Quit
		case actionMenu:
			a.menuOpen = true
			a.menuCursor = int(a.active)
			return nil
		case actionShowForm:
			return a.show(componentForm)
		case actionShowTable:
			return a.show(componentTable)
		}
	}
	if a.active == componentForm {
		return a.handleFormKey(k, b)
	}
	return a.handleTableKey(k, b)
}

// scope names the key scope that currently receives input.
func (a *App) scope() string {
	switch {
	case a.menuOpen:
		return scopeMenu
	case a.active == componentForm:
		if a.formv.editing() {
			return scopeInput
		}
		return scopeForm
	case a.tablev.searching:
		return scopeSearch
	default:
		return scopeTable
	}
}

func (a *App) handleMenuKey(k tea.KeyMsg, b *Binding) tea.Cmd {
	if b == nil {
		return nil
	}
	switch b.Action {
	case actionNavigate:
		switch k.String() {
		case "up", "k":
			a.menuCursor = (a.menuCursor + len(components) - 1) % len(components)
		default:
			a.menuCursor = (a.menuCursor + 1) % len(components)
		}
	case actionSelect:
		a.menuOpen = false
		return a.show(component(a.menuCursor))
	case actionClose:
		a.menuOpen = false
	}
	return nil
}

// show makes c the only component receiving input.
func (a *App) show(c component) tea.Cmd {
	a.menuOpen = false
	if c == a.active {
		return nil
	}
	a.log.Debug("switch component", "from", components[a.active].name, "to", components[c].name)
	a.active = c
	a.status = ""
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
