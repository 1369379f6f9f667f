package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxMessageSize bounds a single client frame.
	MaxMessageSize = 4096

	// MaxInputLength bounds the input field in runes.
	MaxInputLength = 512
)

var (
	// ErrMalformed is returned for frames that are not a JSON object of the
	// expected shape.
	ErrMalformed = errors.New("malformed message")

	// ErrUnknownType is returned for an unrecognized "type" field.
	ErrUnknownType = errors.New("unknown message type")

	// ErrInvalidField is returned when a known message carries bad fields.
	ErrInvalidField = errors.New("invalid message field")
)

// Decode parses and validates one client frame.
func Decode(data []byte) (*ClientMessage, error) {
	if len(data) > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMalformed, len(data), MaxMessageSize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var msg ClientMessage
	if err := dec.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after message", ErrMalformed)
	}
	if err := Validate(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Validate checks that a client message has the fields its type requires.
func Validate(msg *ClientMessage) error {
	switch msg.Type {
	case TypeSubmit, TypeComplete:
		if msg.Input == nil {
			return fmt.Errorf("%w: %s requires input", ErrInvalidField, msg.Type)
		}
		if msg.Direction != "" {
			return fmt.Errorf("%w: %s does not take a direction", ErrInvalidField, msg.Type)
		}
		if !utf8.ValidString(*msg.Input) {
			return fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidField)
		}
		if n := utf8.RuneCountInString(*msg.Input); n > MaxInputLength {
			return fmt.Errorf("%w: input is %d characters, limit is %d", ErrInvalidField, n, MaxInputLength)
		}
	case TypeRecall:
		if msg.Direction != DirectionUp && msg.Direction != DirectionDown {
			return fmt.Errorf("%w: direction must be %q or %q, got %q", ErrInvalidField, DirectionUp, DirectionDown, msg.Direction)
		}
		if msg.Input != nil {
			return fmt.Errorf("%w: recall does not take input", ErrInvalidField)
		}
	case "":
		return fmt.Errorf("%w: missing type", ErrMalformed)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}
	return nil
}

// Encode serializes a server message.
func Encode(msg *ServerMessage) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s message: %w", msg.Type, err)
	}
	return data, nil
}

// DecodeServer parses a server frame. Clients and tests use it.
func DecodeServer(data []byte) (*ServerMessage, error) {
	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformed)
	}
	return &msg, nil
}
