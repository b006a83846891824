package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/takak2166/notion-clipper/internal/logger"
)

// MessageType discriminates message envelopes
type MessageType string

const (
	AddToNotion     MessageType = "ADD_TO_NOTION"
	GetSelectedText MessageType = "GET_SELECTED_TEXT"
)

// Message is the envelope delivered to a listener
type Message struct {
	ID   string          `json:"id"`
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// HandlerFunc answers one message. The returned value is serialized as the
// single response; a returned error is reported to the sender as a
// transport failure.
type HandlerFunc func(ctx context.Context, msg Message) (interface{}, error)

// Sender delivers a message and decodes its response into reply
type Sender interface {
	Send(ctx context.Context, msgType MessageType, data interface{}, reply interface{}) error
}

// Bus connects isolated contexts. Payloads and responses cross it only in
// serialized form, so sender and listener never share memory.
type Bus struct {
	name     string
	mu       sync.RWMutex
	handlers map[MessageType]HandlerFunc
}

// New creates a bus; name appears in logs and errors
func New(name string) *Bus {
	return &Bus{
		name:     name,
		handlers: make(map[MessageType]HandlerFunc),
	}
}

// Handle registers the listener for msgType, replacing any previous one
func (b *Bus) Handle(msgType MessageType, h HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[msgType] = h
}

type result struct {
	payload []byte
	err     error
}

// Send implements Sender. The listener runs on its own goroutine and the
// call blocks until it responds or ctx is done.
func (b *Bus) Send(ctx context.Context, msgType MessageType, data interface{}, reply interface{}) error {
	b.mu.RLock()
	h, ok := b.handlers[msgType]
	b.mu.RUnlock()
	if !ok {
		return &TransportError{Bus: b.name, Type: msgType, Err: ErrNoListener}
	}

	msg := Message{ID: uuid.NewString(), Type: msgType}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return &TransportError{Bus: b.name, Type: msgType, Err: fmt.Errorf("failed to encode message: %w", err)}
		}
		msg.Data = raw
	}

	logger.Debug("Dispatching message", logger.Fields{
		"bus":  b.name,
		"type": msgType,
		"id":   msg.ID,
	})

	done := make(chan result, 1)
	go func() {
		resp, err := h(ctx, msg)
		if err != nil {
			done <- result{err: err}
			return
		}
		payload, err := json.Marshal(resp)
		if err != nil {
			err = fmt.Errorf("failed to encode response: %w", err)
		}
		done <- result{payload: payload, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		return &TransportError{Bus: b.name, Type: msgType, Err: ctx.Err()}
	}

	if res.err != nil {
		return &TransportError{Bus: b.name, Type: msgType, Err: res.err}
	}

	if reply == nil {
		return nil
	}
	if err := json.Unmarshal(res.payload, reply); err != nil {
		return &TransportError{Bus: b.name, Type: msgType, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// Decode unmarshals a message payload into v
func (m Message) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return fmt.Errorf("message %s has no data", m.Type)
	}
	return json.Unmarshal(m.Data, v)
}
