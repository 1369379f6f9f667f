package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BootMessage is shown next to the spinner until the session is ready.
const BootMessage = "Initializing secure connection..."

// Layout constants
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// header, footer and their rules, plus the outer border and prompt line
	chromeHeight = 7
	chromeWidth  = 4
)

// Color palette
var (
	GreenColor  = lipgloss.Color("#00FF41") // transcript text
	DimColor    = lipgloss.Color("#5F8F5F") // title, help, boot text
	CyanColor   = lipgloss.Color("#00D9FF") // prompt
	ErrorColor  = lipgloss.Color("#FF4444")
	TextColor   = lipgloss.Color("#FFFFFF")
	BorderColor = lipgloss.Color("#1F3F1F")

	dotColors = []lipgloss.Color{"#FF5F56", "#FFBD2E", "#27C93F"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(CyanColor)

	CommandStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	OutputStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	BootStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)

// windowDots renders the three coloured circles shown on the right of the
// header.
func windowDots() string {
	dots := make([]string, len(dotColors))
	for i, c := range dotColors {
		dots[i] = lipgloss.NewStyle().Foreground(c).Render("●")
	}
	return strings.Join(dots, " ")
}

// buildHeader lays out the title on the left and the window dots on the
// right of a row that is width cells wide.
func buildHeader(title string, width int) string {
	left := TitleStyle.Render(title)
	right := windowDots()
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderContainer wraps content in the bordered panel with a header and a
// footer, filling the whole terminal.
func renderContainer(title, content, footer string, width, height int) string {
	inner := width - chromeWidth

	rule := lipgloss.NewStyle().
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	header := rule.BorderStyle(lipgloss.Border{Bottom: "─"}).
		Render(buildHeader(title, inner-2))
	foot := rule.BorderStyle(lipgloss.Border{Top: "─"}).
		Render(HelpStyle.Render(footer))

	body := lipgloss.NewStyle().
		Width(inner).
		Height(height - chromeHeight + 1).
		Render(content)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Width(width - 2).
		Height(height - 2).
		AlignVertical(lipgloss.Top).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body, foot))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, panel)
}
