package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value shown under a header.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed before command output.
type Header struct {
	Title   string  // e.g. "PORTFOLIO"
	Command string  // e.g. "termfolio run about"
	Params  []Param // shown in order
	Width   int
}

// NewHeader creates a header sized to the current terminal.
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the render width
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)
	if len(h.Params) == 0 {
		return boxStyle(lipgloss.RoundedBorder(), PrimaryColor, width).Render(top)
	}

	keyWidth := 0
	for _, p := range h.Params {
		if n := lipgloss.Width(p.Key); n > keyWidth {
			keyWidth = n
		}
	}
	rows := make([]string, len(h.Params))
	for i, p := range h.Params {
		k := ParamKeyStyle.Render(p.Key + ":" + strings.Repeat(" ", keyWidth-lipgloss.Width(p.Key)))
		rows[i] = k + " " + ParamValueStyle.Render(p.Value)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, top, divider(width-6), strings.Join(rows, "\n"))
	return boxStyle(lipgloss.RoundedBorder(), PrimaryColor, width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
