package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexchen/termfolio/internal/discovery"
	"github.com/alexchen/termfolio/internal/terminal"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinTerminalWidth},
		{20, MinTerminalWidth},
		{80, 80},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeader_Render(t *testing.T) {
	h := NewHeader("portfolio", "termfolio run about",
		Param{Key: "Content", Value: "built-in"},
		Param{Key: "Prompt", Value: "visitor@cybersec-portfolio:~$"},
	).SetWidth(80)
	out := h.Render()

	for _, want := range []string{"PORTFOLIO", "termfolio run about", "Content:", "built-in", "visitor@cybersec-portfolio:~$"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Content:") > strings.Index(out, "Prompt:") {
		t.Error("params should keep their order")
	}
}

func TestResult_Render(t *testing.T) {
	ok := NewSuccessResult("Configuration written", Param{Key: "Path", Value: "/tmp/config.yaml"}).SetWidth(80).Render()
	if !strings.Contains(ok, SuccessMarker+"  SUCCESS") || !strings.Contains(ok, "/tmp/config.yaml") {
		t.Errorf("success box:\n%s", ok)
	}

	fail := NewFailureResult("Scan failed", errors.New("no multicast"), "Check the firewall").SetWidth(80).Render()
	for _, want := range []string{FailureMarker + "  FAILED", "Error: no multicast", "Troubleshooting:", "• Check the firewall"} {
		if !strings.Contains(fail, want) {
			t.Errorf("failure box missing %q:\n%s", want, fail)
		}
	}

	warn := NewWarningResult("No instances found").SetWidth(80).Render()
	if !strings.Contains(warn, WarningMarker+"  WARNING") || strings.Contains(warn, "Troubleshooting") {
		t.Errorf("warning box:\n%s", warn)
	}
}

func TestRenderTranscript(t *testing.T) {
	lines := []terminal.Line{
		{Kind: terminal.LineInput, Text: "whoami", Prompt: "$"},
		{Kind: terminal.LineOutput, Text: "Alex Chen"},
		{Kind: terminal.LineError, Text: "Command not found: ls."},
	}
	out := RenderTranscript(lines, 60)
	for _, want := range []string{"$ whoami", "Alex Chen", "Command not found: ls."} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
}

func TestRenderInstanceTable(t *testing.T) {
	instances := []*discovery.Instance{
		{Name: "lab", IP: "192.168.1.20", Port: 8080, Metadata: map[string]string{"version": "1.2.0"}},
		{Name: "desk", IP: "10.0.0.5", Port: 443, Metadata: map[string]string{"tls": "1"}},
	}
	out := RenderInstanceTable(instances, 80)
	for _, want := range []string{"NAME", "VERSION", "URL", "lab", "1.2.0", "http://192.168.1.20:8080/", "https://10.0.0.5:443/", "2 instance(s) found"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterWidth(&buf, 70)

	p.PrintHeader("Portfolio", "termfolio run help")
	p.PrintTranscript(nil)
	p.PrintTranscript([]terminal.Line{{Kind: terminal.LineOutput, Text: "hello"}})
	p.PrintWarning("nothing here")

	out := buf.String()
	if !strings.Contains(out, "PORTFOLIO") || !strings.Contains(out, "hello") || !strings.Contains(out, "nothing here") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := lipgloss.Width(line); w > 70 {
			t.Errorf("line is %d cells wide, want <= 70: %q", w, line)
		}
	}
}
