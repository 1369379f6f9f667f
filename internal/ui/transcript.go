package ui

import (
	"strings"

	"github.com/alexchen/termfolio/internal/terminal"
)

// RenderTranscript renders terminal lines the way the interactive terminal
// shows them, without the surrounding panel.
func RenderTranscript(lines []terminal.Line, width int) string {
	width = clampWidth(width)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case terminal.LineInput:
			out = append(out, PromptStyle.Render(l.Prompt)+" "+CommandStyle.Render(l.Text))
		case terminal.LineError:
			out = append(out, ErrorMessageStyle.Width(width).Render(l.Text))
		default:
			out = append(out, OutputStyle.Width(width).Render(l.Text))
		}
	}
	return strings.Join(out, "\n")
}
