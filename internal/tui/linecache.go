package tui

import (
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexchen/termfolio/internal/terminal"
)

const lineCacheSize = 256

type lineKey struct {
	kind   terminal.LineKind
	prompt string
	width  int
	text   string
}

// lineCache memoises styled transcript lines. The whole transcript is
// re-rendered on every append and resize.
type lineCache struct {
	cache *lru.Cache[lineKey, string]
}

func newLineCache(size int) *lineCache {
	c, err := lru.New[lineKey, string](size)
	if err != nil {
		// only fails for a non-positive size
		c, _ = lru.New[lineKey, string](lineCacheSize)
	}
	return &lineCache{cache: c}
}

// Render returns the styled form of line wrapped to width cells.
func (c *lineCache) Render(line terminal.Line, width int) string {
	k := lineKey{kind: line.Kind, prompt: line.Prompt, width: width, text: line.Text}
	if s, ok := c.cache.Get(k); ok {
		return s
	}
	s := renderLine(line, width)
	c.cache.Add(k, s)
	return s
}

// Len reports the number of cached lines.
func (c *lineCache) Len() int {
	return c.cache.Len()
}

func renderLine(line terminal.Line, width int) string {
	switch line.Kind {
	case terminal.LineInput:
		return lipgloss.NewStyle().Width(width).
			Render(PromptStyle.Render(line.Prompt) + " " + CommandStyle.Render(line.Text))
	case terminal.LineError:
		return ErrorStyle.Width(width).Render(line.Text)
	default:
		return OutputStyle.Width(width).Render(line.Text)
	}
}
