package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for one-shot command output
var (
	PrimaryColor = lipgloss.Color("#00FF41") // Green - headers, borders
	AccentColor  = lipgloss.Color("#00D9FF") // Cyan - prompts, URLs
	SuccessColor = lipgloss.Color("#27C93F")
	ErrorColor   = lipgloss.Color("#FF4444")
	WarningColor = lipgloss.Color("#FFBD2E")
	MutedColor   = lipgloss.Color("#5F8F5F")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Layout constants
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				PaddingLeft(1)

	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(1)

	ParamKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	ParamValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	CommandStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	OutputStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	URLStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Underline(true)

	TipStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the width of stdout, clamped to the supported
// range. Non-terminals get MinTerminalWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// boxStyle returns a bordered box that fills width cells.
func boxStyle(border lipgloss.Border, color lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 1)
}

func divider(width int) string {
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(strings.Repeat("─", width))
}
