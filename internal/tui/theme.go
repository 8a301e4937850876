package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
// https://catppuccin.com/palette
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorAccent  = colorLavender
	colorBrand   = colorMauve
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// statusColors maps employee statuses to badge colors.
var statusColors = map[string]lipgloss.Color{
	"Active":   colorSuccess,
	"Inactive": colorError,
	"On Leave": colorWarning,
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Form field chrome
	labelStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	requiredStyle = lipgloss.NewStyle().Foreground(colorError)
	helperStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	hintStyle     = lipgloss.NewStyle().Foreground(colorInfo)
	counterStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)

	avatarStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorSapphire).
			Bold(true)

	salaryStyle = lipgloss.NewStyle().Foreground(colorPeach)

	pageStyle        = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	currentPageStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorBlue).
				Bold(true).
				Padding(0, 1)
	disabledStyle = lipgloss.NewStyle().Foreground(colorSurface2)

	badgeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMantle)

	successBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSuccess).
				Padding(1, 3)

	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

func statusBadge(status string) string {
	c, ok := statusColors[status]
	if !ok {
		c = colorOverlay1
	}
	return badgeStyle.Background(c).Render(status)
}
