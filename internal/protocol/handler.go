package protocol

import (
	"fmt"

	"github.com/alexchen/termfolio/internal/terminal"
)

// Handler reacts to validated client messages.
type Handler interface {
	HandleSubmit(input string) error
	HandleRecall(d terminal.Direction) error
	HandleComplete(input string) error
}

// Dispatch routes a decoded message to the matching Handler method.
func Dispatch(h Handler, msg *ClientMessage) error {
	switch msg.Type {
	case TypeSubmit:
		return h.HandleSubmit(msg.Text())
	case TypeComplete:
		return h.HandleComplete(msg.Text())
	case TypeRecall:
		d, err := terminal.ParseDirection(msg.Direction)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		return h.HandleRecall(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}
}
