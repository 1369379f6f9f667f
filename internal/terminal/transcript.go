package terminal

// LineKind tells renderers how to style a transcript line.
type LineKind string

const (
	LineInput  LineKind = "input"
	LineOutput LineKind = "output"
	LineError  LineKind = "error"
)

// Line is one rendered entry of the transcript. Prompt is only set for
// input lines.
type Line struct {
	Kind   LineKind `json:"kind"`
	Text   string   `json:"text"`
	Prompt string   `json:"prompt,omitempty"`
}

// Transcript is the append-only list of lines shown to the user. Only
// Clear removes lines.
type Transcript struct {
	lines []Line
}

// Append adds lines at the end.
func (t *Transcript) Append(lines ...Line) {
	t.lines = append(t.lines, lines...)
}

// Clear empties the transcript.
func (t *Transcript) Clear() {
	t.lines = nil
}

// Lines returns a copy of the current lines.
func (t *Transcript) Lines() []Line {
	return append([]Line(nil), t.lines...)
}

// Len returns the number of lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}
