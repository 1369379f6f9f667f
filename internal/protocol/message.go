package protocol

import "github.com/alexchen/termfolio/internal/terminal"

// MessageType is the value of the "type" field.
type MessageType string

// Client -> server message types.
const (
	TypeSubmit   MessageType = "submit"
	TypeRecall   MessageType = "recall"
	TypeComplete MessageType = "complete"
)

// Server -> client message types.
const (
	TypeBooting MessageType = "booting"
	TypeReady   MessageType = "ready"
	TypeLines   MessageType = "lines"
	TypeClear   MessageType = "clear"
	TypeInput   MessageType = "input"
	TypeError   MessageType = "error"
)

// Recall directions as they appear on the wire.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ClientMessage is a message sent by the browser.
type ClientMessage struct {
	Type      MessageType `json:"type"`
	Input     *string     `json:"input,omitempty"`     // submit, complete
	Direction string      `json:"direction,omitempty"` // recall
}

// Text returns the input field, or "" when it was omitted.
func (m *ClientMessage) Text() string {
	if m.Input == nil {
		return ""
	}
	return *m.Input
}

// ServerMessage is a message sent to the browser.
type ServerMessage struct {
	Type  MessageType     `json:"type"`
	Lines []terminal.Line `json:"lines,omitempty"`
	Input *string         `json:"input,omitempty"`
	Error string          `json:"error,omitempty"`
}

// NewBooting reports that the session is still booting.
func NewBooting() *ServerMessage { return &ServerMessage{Type: TypeBooting} }

// NewReady reports that the session accepts input.
func NewReady() *ServerMessage { return &ServerMessage{Type: TypeReady} }

// NewClear reports that the transcript was emptied.
func NewClear() *ServerMessage { return &ServerMessage{Type: TypeClear} }

// NewLines carries appended transcript lines.
func NewLines(lines []terminal.Line) *ServerMessage {
	return &ServerMessage{Type: TypeLines, Lines: lines}
}

// NewInput replaces the client's input field. An empty string is sent
// explicitly so the client can clear the field.
func NewInput(input string) *ServerMessage {
	return &ServerMessage{Type: TypeInput, Input: &input}
}

// NewError reports a rejected client message.
func NewError(err error) *ServerMessage {
	return &ServerMessage{Type: TypeError, Error: err.Error()}
}

// Text returns the input field, or "" when it was omitted.
func (m *ServerMessage) Text() string {
	if m.Input == nil {
		return ""
	}
	return *m.Input
}
