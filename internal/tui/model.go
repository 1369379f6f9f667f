package tui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/terminal"
)

// DefaultBootDelay is how long the boot screen stays up.
const DefaultBootDelay = time.Second

const maxInputLength = 512

// bootSeq hands out generation tokens so a tick scheduled for one model
// never boots another.
var bootSeq atomic.Uint64

// bootMsg ends the boot phase of the model whose generation matches.
type bootMsg struct {
	gen uint64
}

// Options configures the interactive terminal.
type Options struct {
	// BootDelay is the time spent on the boot screen. Zero boots on the
	// first update.
	BootDelay time.Duration

	// SessionName identifies the session in command logs.
	SessionName string
}

// Model is the Bubble Tea model for the interactive terminal.
type Model struct {
	session *terminal.Session
	title   string
	name    string

	keys     keyMap
	bootKeys bootKeyMap
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	lines    *lineCache

	bootDelay time.Duration
	bootGen   uint64
	booting   bool

	Width  int
	Height int
}

// NewModel creates a model around sess. A nil session gets the default
// portfolio.
func NewModel(sess *terminal.Session, opts Options) Model {
	if sess == nil {
		sess = terminal.NewSession(nil, nil)
	}
	if opts.SessionName == "" {
		opts.SessionName = "tui"
	}

	keys := defaultKeyMap()

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(sess.Prompt()) + " "
	ti.TextStyle = CommandStyle
	ti.CharLimit = maxInputLength
	ti.SetValue(sess.Input())

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{PageUp: keys.PageUp, PageDown: keys.PageDown}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := Model{
		session:   sess,
		title:     terminal.Title(sess.Portfolio()),
		name:      opts.SessionName,
		keys:      keys,
		bootKeys:  bootKeyMap{Quit: keys.Quit},
		input:     ti,
		viewport:  vp,
		spinner:   s,
		help:      help.New(),
		lines:     newLineCache(lineCacheSize),
		bootDelay: opts.BootDelay,
		bootGen:   bootSeq.Add(1),
		booting:   !sess.Ready(),
	}
	if !m.booting {
		m.input.Focus()
	}
	return m
}

// Session returns the terminal session driven by the model.
func (m Model) Session() *terminal.Session {
	return m.session
}

// Booting reports whether the boot screen is still up.
func (m Model) Booting() bool {
	return m.booting
}

// Input returns the text currently in the prompt.
func (m Model) Input() string {
	return m.input.Value()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if !m.booting {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, bootCmd(m.bootGen, m.bootDelay))
}

func bootCmd(gen uint64, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return bootMsg{gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return bootMsg{gen: gen}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case bootMsg:
		if msg.gen != m.bootGen || !m.booting {
			return m, nil
		}
		m.booting = false
		m.session.Boot()
		m.refresh()
		logging.Debug("Terminal ready", zap.String("session", m.name))
		focus := m.input.Focus()
		return m, tea.Batch(focus, textinput.Blink)

	case spinner.TickMsg:
		if !m.booting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.booting {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.session.SetInput(m.input.Value())
		up := m.session.Submit()
		if !up.Cleared && len(up.Appended) == 0 {
			return m, nil
		}
		logging.LogCommand(m.name, m.input.Value(), up.Result.Kind.String())
		m.setInput(m.session.Input())
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.recall(terminal.Up)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.recall(terminal.Down)
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.session.SetInput(m.input.Value())
		if m.session.Complete() {
			m.setInput(m.session.Input())
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) recall(d terminal.Direction) {
	m.session.SetInput(m.input.Value())
	if m.session.Recall(d) {
		m.setInput(m.session.Input())
	}
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m *Model) resize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	m.Width = width
	m.Height = height
	m.help.Width = width - chromeWidth
	m.input.Width = width - chromeWidth - len([]rune(m.session.Prompt())) - 2
	m.viewport.Width = width - chromeWidth
	m.viewport.Height = height - chromeHeight
	m.refresh()
}

// refresh re-renders the transcript into the viewport and scrolls to the
// newest line.
func (m *Model) refresh() {
	if m.viewport.Width <= 0 {
		return
	}
	lines := m.session.Lines()
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = m.lines.Render(l, m.viewport.Width)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	var content, footer string
	if m.booting {
		content = m.spinner.View() + " " + BootStyle.Render(BootMessage)
		footer = m.help.View(m.bootKeys)
	} else {
		content = m.viewport.View() + "\n" + m.input.View()
		footer = m.help.View(m.keys)
	}
	return renderContainer(m.title, content, footer, m.Width, m.Height)
}

// Run starts the interactive terminal on the alternate screen and blocks
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, sess *terminal.Session, opts Options) error {
	m := NewModel(sess, opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
