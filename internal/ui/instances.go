package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexchen/termfolio/internal/discovery"
)

// RenderInstanceTable lists discovered servers, one per row.
func RenderInstanceTable(instances []*discovery.Instance, width int) string {
	width = clampWidth(width)

	nameWidth := len("NAME")
	for _, inst := range instances {
		if n := lipgloss.Width(inst.Name); n > nameWidth {
			nameWidth = n
		}
	}
	if limit := width / 3; nameWidth > limit {
		nameWidth = limit
	}
	cell := lipgloss.NewStyle().Width(nameWidth + 2).MaxWidth(nameWidth + 2)
	ver := lipgloss.NewStyle().Width(10)

	rows := []string{
		cell.Inherit(TableHeaderStyle).Render("NAME") + ver.Inherit(TableHeaderStyle).Render("VERSION") + TableHeaderStyle.Render("URL"),
		divider(width - 2),
	}
	for _, inst := range instances {
		v := inst.Version()
		if v == "" {
			v = "-"
		}
		rows = append(rows, cell.Render(inst.Name)+ver.Render(v)+URLStyle.Render(inst.URL()))
	}
	rows = append(rows, "", TipStyle.Render(fmt.Sprintf("%d instance(s) found", len(instances))))
	return strings.Join(rows, "\n")
}
