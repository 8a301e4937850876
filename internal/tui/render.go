package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	info := components[a.active]
	header := a.renderHeader()
	intro := titleStyle.Render(info.name) + "\n" + descStyle.Render(info.description)

	var body string
	if a.active == componentForm {
		body = a.renderForm()
	} else {
		body = a.renderTable()
	}
	body = header + "\n\n" + intro + "\n\n" + listBoxStyle.Render(body)
	if a.menuOpen {
		body += "\n\n" + a.renderMenu()
	}
	return a.placeWithFooter(body, a.renderStatus(a.status), a.renderFooter(a.keys.HelpBindings(a.scope())))
}

func (a *App) renderHeader() string {
	var tabs []string
	for i, c := range components {
		if component(i) == a.active {
			tabs = append(tabs, activeTabStyle.Render(c.name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(c.name))
		}
	}
	line := headerAppStyle.Render(appName) + "  " + strings.Join(tabs, " ")
	if a.width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(a.width).Render(line)
}

func (a *App) renderMenu() string {
	lines := []string{titleStyle.Render("Select Component")}
	for i, c := range components {
		marker := "  "
		name := c.name
		if i == a.menuCursor {
			marker = cursorStyle.Render("› ")
			name = cursorStyle.Render(name)
		}
		lines = append(lines, marker+name, "    "+mutedStyle.Render(c.description))
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	dStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+dStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(a.width).Render(flat)
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(a.height-2, 1)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// full-width lines so stale cells from the previous frame are overwritten
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
