package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the colour and marker of a result box
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is a summary box printed after a command finishes.
type Result struct {
	Type  ResultType
	Title string
	// Details are shown in order under the title.
	Details []Param
	// Error and Tips are only rendered for failures and warnings.
	Error error
	Tips  []string
	Width int
}

// NewSuccessResult creates a success box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure box
func NewFailureResult(title string, err error, tips ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Tips: tips, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning box
func NewWarningResult(title string, tips ...string) *Result {
	return &Result{Type: ResultWarning, Title: title, Tips: tips, Width: GetTerminalWidth()}
}

// SetWidth sets the render width
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail row
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

func (r *Result) style() (marker, label string, color lipgloss.Color) {
	switch r.Type {
	case ResultFailure:
		return FailureMarker, "FAILED", ErrorColor
	case ResultWarning:
		return WarningMarker, "WARNING", WarningColor
	default:
		return SuccessMarker, "SUCCESS", SuccessColor
	}
}

// Render returns the styled box
func (r *Result) Render() string {
	width := clampWidth(r.Width)
	marker, label, color := r.style()

	lines := []string{
		lipgloss.NewStyle().Foreground(color).Bold(true).
			Render(fmt.Sprintf("%s  %s  ─  %s", marker, label, r.Title)),
	}

	for _, d := range r.Details {
		lines = append(lines, ParamKeyStyle.Render(d.Key+":")+" "+ParamValueStyle.Render(d.Value))
	}

	if r.Error != nil && r.Type != ResultSuccess {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+r.Error.Error()))
	}

	if len(r.Tips) > 0 && r.Type != ResultSuccess {
		lines = append(lines, "", TableHeaderStyle.Render("Troubleshooting:"))
		for _, tip := range r.Tips {
			lines = append(lines, TipStyle.Render("  • "+tip))
		}
	}

	return boxStyle(lipgloss.DoubleBorder(), color, width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
