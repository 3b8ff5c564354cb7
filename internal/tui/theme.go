package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.
// Designed for readability in dark terminals during long debugging
// sessions.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")
	colorCyan   = lipgloss.Color("#76e3ea")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{Top: "─"}).
			BorderForeground(colorDivider)

	panelActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.Border{Top: "─"}).
				BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)
)

// Tab strip
var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Padding(0, 1)

	tabBadgeStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// Action list
var (
	actionNormalStyle = lipgloss.NewStyle().
				Foreground(colorText)

	actionSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	actionHoverStyle = lipgloss.NewStyle().
				Background(colorBgSurface).
				Foreground(colorText)

	actionPassStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	actionFailStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	actionTimeStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	actionDurationStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Timeline band
var (
	timelineTickStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	timelineMarkStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	timelineFailStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	timelineActiveStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	timelineRangeStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)

// Detail panes
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(colorDivider)

	logLineStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	consoleWarnStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	consoleErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	networkOkStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	networkFailStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	sourceLineNoStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	sourceHitStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorYellow).
			Bold(true)

	inspectorModeStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true)

	locatorStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Trace list
var (
	traceItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	traceSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	traceDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	statusPassStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusFailStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)
