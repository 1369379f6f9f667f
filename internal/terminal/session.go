package terminal

import (
	"strings"

	"github.com/alexchen/termfolio/internal/portfolio"
)

// DefaultPrompt is the label in front of every input line.
const DefaultPrompt = "visitor@cybersec-portfolio:~$"

// Session is the state of one visitor's terminal: transcript, history,
// input buffer and the booting/ready flag. A Session is owned by a single
// event flow (one Bubble Tea program or one WebSocket connection) and is
// not safe for concurrent use.
type Session struct {
	proc       *Processor
	portfolio  *portfolio.Portfolio
	prompt     string
	transcript Transcript
	history    *History
	input      string
	ready      bool
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		if prompt != "" {
			s.prompt = prompt
		}
	}
}

// WithHistorySize overrides DefaultHistorySize.
func WithHistorySize(n int) SessionOption {
	return func(s *Session) {
		s.history = NewHistory(n)
	}
}

// NewSession creates a session in the booting state.
func NewSession(p *portfolio.Portfolio, r *Registry, opts ...SessionOption) *Session {
	if p == nil {
		p = portfolio.Default()
	}
	if r == nil {
		r = NewRegistry(p)
	}
	s := &Session{
		proc:      NewProcessor(r),
		portfolio: p,
		prompt:    DefaultPrompt,
		history:   NewHistory(DefaultHistorySize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update reports how a submission changed the transcript. When Cleared is
// set the transcript was emptied and Appended is empty.
type Update struct {
	Result   Result
	Appended []Line
	Cleared  bool
}

// Boot switches the session to ready and shows the welcome banner.
// Calling it again has no effect and returns nil.
func (s *Session) Boot() []Line {
	if s.ready {
		return nil
	}
	s.ready = true
	welcome := Line{Kind: LineOutput, Text: Welcome(s.portfolio)}
	s.transcript.Clear()
	s.transcript.Append(welcome)
	return []Line{welcome}
}

// Ready reports whether the boot delay has elapsed.
func (s *Session) Ready() bool {
	return s.ready
}

// Prompt returns the prompt label.
func (s *Session) Prompt() string {
	return s.prompt
}

// Portfolio returns the content the session renders.
func (s *Session) Portfolio() *portfolio.Portfolio {
	return s.portfolio
}

// Registry returns the command table.
func (s *Session) Registry() *Registry {
	return s.proc.Registry()
}

// Input returns the unsent input buffer.
func (s *Session) Input() string {
	return s.input
}

// SetInput replaces the unsent input buffer.
func (s *Session) SetInput(input string) {
	s.input = input
}

// Lines returns a copy of the transcript.
func (s *Session) Lines() []Line {
	return s.transcript.Lines()
}

// History returns the session's history log.
func (s *Session) History() *History {
	return s.history
}

// Submit executes the input buffer. Blank input, or input sent before the
// session is ready, changes nothing.
func (s *Session) Submit() Update {
	if !s.ready {
		return Update{}
	}
	trimmed := strings.TrimSpace(s.input)
	if trimmed == "" {
		return Update{}
	}

	s.history.Add(trimmed)
	s.history.ResetNavigation()
	s.input = ""

	res := s.proc.Execute(trimmed)
	if res.Kind == ResultClear {
		s.transcript.Clear()
		return Update{Result: res, Cleared: true}
	}

	appended := []Line{{Kind: LineInput, Text: trimmed, Prompt: s.prompt}}
	switch res.Kind {
	case ResultOutput:
		appended = append(appended, Line{Kind: LineOutput, Text: res.Text})
	case ResultError:
		appended = append(appended, Line{Kind: LineError, Text: res.Text})
	}
	s.transcript.Append(appended...)
	return Update{Result: res, Appended: appended}
}

// SubmitLine sets the input buffer to line and submits it.
func (s *Session) SubmitLine(line string) Update {
	s.input = line
	return s.Submit()
}

// Recall moves through the history and copies the recalled command into
// the input buffer, overwriting unsent text. It reports false when the
// buffer was left alone (moving up through an empty history).
func (s *Session) Recall(d Direction) bool {
	s.history.Navigate(d)
	if d == Up && s.history.Cursor() < 0 {
		return false
	}
	s.input = s.history.Current()
	return true
}

// Complete replaces the input buffer with the only command name that starts
// with it. Ambiguous or unmatched input is left untouched.
func (s *Session) Complete() bool {
	name, ok := s.proc.Registry().Complete(s.input)
	if !ok {
		return false
	}
	s.input = name
	return true
}
