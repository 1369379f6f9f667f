package terminal

import "fmt"

// DefaultHistorySize is how many submitted commands are kept for recall.
const DefaultHistorySize = 50

// Direction is a recall step through the history.
type Direction int

const (
	// Down moves toward newer entries, ending at "not navigating".
	Down Direction = -1
	// Up moves toward older entries.
	Up Direction = 1
)

// ParseDirection accepts "up" and "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (expected up or down)", s)
	}
}

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// History is a bounded log of submitted commands, oldest first, with a
// recall cursor: -1 means not navigating, 0 is the most recent entry and
// larger values reach further back.
type History struct {
	entries []string
	max     int
	cursor  int
}

// NewHistory creates a history that keeps at most max entries. Values
// outside 1..DefaultHistorySize use DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 || max > DefaultHistorySize {
		max = DefaultHistorySize
	}
	return &History{
		max:     max,
		cursor:  -1,
	}
}

// Add appends cmd unless it repeats the last entry, then drops the oldest
// entries beyond the cap.
func (h *History) Add(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	h.clampCursor()
}

// Navigate moves the cursor one step, clamped to [-1, len-1].
func (h *History) Navigate(d Direction) {
	h.cursor += int(d)
	h.clampCursor()
}

// ResetNavigation returns the cursor to "not navigating".
func (h *History) ResetNavigation() {
	h.cursor = -1
}

// Current returns the entry under the cursor, or "" when not navigating.
func (h *History) Current() string {
	if h.cursor < 0 {
		return ""
	}
	return h.entries[len(h.entries)-1-h.cursor]
}

// Cursor returns the navigation cursor.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) clampCursor() {
	if h.cursor > len(h.entries)-1 {
		h.cursor = len(h.entries) - 1
	}
	if h.cursor < -1 {
		h.cursor = -1
	}
}
