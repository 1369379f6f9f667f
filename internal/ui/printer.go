package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/alexchen/termfolio/internal/discovery"
	"github.com/alexchen/termfolio/internal/terminal"
)

// Printer writes styled components to a writer. Commands that print once
// and exit (run, scan, config) use it instead of a Bubble Tea program.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer sized to the terminal. If w is nil,
// os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

// NewPrinterWidth creates a Printer with a fixed width, clamped to the
// supported range.
func NewPrinterWidth(w io.Writer, width int) *Printer {
	p := NewPrinter(w)
	p.width = clampWidth(width)
	return p
}

// Println writes content followed by a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintTranscript prints terminal lines
func (p *Printer) PrintTranscript(lines []terminal.Line) {
	if len(lines) == 0 {
		return
	}
	p.Println(RenderTranscript(lines, p.width))
}

// PrintInstances prints the table of discovered servers
func (p *Printer) PrintInstances(instances []*discovery.Instance) {
	p.Println(RenderInstanceTable(instances, p.width))
}

// PrintSuccess prints a success box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintFailure prints a failure box with troubleshooting tips
func (p *Printer) PrintFailure(title string, err error, tips ...string) {
	p.Println(NewFailureResult(title, err, tips...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning box
func (p *Printer) PrintWarning(title string, tips ...string) {
	p.Println(NewWarningResult(title, tips...).SetWidth(p.width).Render())
}
