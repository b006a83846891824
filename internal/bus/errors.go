package bus

import (
	"errors"
	"fmt"
)

// ErrNoListener is returned when nothing is registered for a message type
var ErrNoListener = errors.New("could not establish connection: receiving end does not exist")

// TransportError represents a message that could not be delivered or answered
type TransportError struct {
	Bus  string
	Type MessageType
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error [%s] %s: %v", e.Bus, e.Type, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
