package selection

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/takak2166/notion-clipper/internal/bus"
	"github.com/takak2166/notion-clipper/internal/logger"
	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/takak2166/notion-clipper/internal/settings"
)

// DefaultClickDelay lets a click-driven selection register before it is checked
const DefaultClickDelay = 100 * time.Millisecond

// Page exposes the text currently highlighted in the hosting page
type Page interface {
	Selection() string
}

// PageFunc adapts a function to Page
type PageFunc func() string

func (f PageFunc) Selection() string { return f() }

// Response answers a GET_SELECTED_TEXT query
type Response struct {
	SelectedText string `json:"selectedText"`
}

// Observer tracks the page selection and mirrors it to the settings store
type Observer struct {
	page       Page
	store      settings.Store
	clickDelay time.Duration

	mu      sync.Mutex
	text    string
	pending *time.Timer
	checks  sync.WaitGroup
}

// Option configures an Observer
type Option func(*Observer)

// WithClickDelay overrides DefaultClickDelay
func WithClickDelay(d time.Duration) Option {
	return func(o *Observer) {
		o.clickDelay = d
	}
}

// NewObserver creates an observer for page
func NewObserver(page Page, store settings.Store, opts ...Option) *Observer {
	o := &Observer{
		page:       page,
		store:      store,
		clickDelay: DefaultClickDelay,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register installs the GET_SELECTED_TEXT listener on b
func (o *Observer) Register(b *bus.Bus) {
	b.Handle(bus.GetSelectedText, func(ctx context.Context, msg bus.Message) (interface{}, error) {
		return Response{SelectedText: o.SelectedText()}, nil
	})
}

// SelectedText returns the held selection; it may lag the store while a write is in flight
func (o *Observer) SelectedText() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.text
}

// PointerUp captures the selection left by a mouse release
func (o *Observer) PointerUp(ctx context.Context) {
	o.capture(ctx)
}

// KeyUp captures keyboard-driven selections on modifier release
func (o *Observer) KeyUp(ctx context.Context, key string) {
	switch key {
	case "Control", "Shift", "Meta":
		o.capture(ctx)
	}
}

// Click clears the selection after the click delay if nothing ended up
// selected. A newer click supersedes a check that has not fired yet.
func (o *Observer) Click(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopPending()
	o.checks.Add(1)
	o.pending = time.AfterFunc(o.clickDelay, func() {
		defer o.checks.Done()
		if strings.TrimSpace(o.page.Selection()) != "" {
			return
		}
		o.update(context.WithoutCancel(ctx), "")
	})
}

// Wait blocks until the scheduled click check has run
func (o *Observer) Wait() {
	o.checks.Wait()
}

// Close stops a pending click check
func (o *Observer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopPending()
}

// stopPending must be called with o.mu held
func (o *Observer) stopPending() {
	if o.pending != nil && o.pending.Stop() {
		o.checks.Done()
	}
	o.pending = nil
}

func (o *Observer) capture(ctx context.Context) {
	text := strings.TrimSpace(o.page.Selection())
	if text == "" {
		return
	}
	o.update(ctx, text)
}

func (o *Observer) update(ctx context.Context, text string) {
	o.mu.Lock()
	o.text = text
	o.mu.Unlock()

	if err := o.store.Set(ctx, map[string]string{models.KeySelectedText: text}); err != nil {
		logger.Warn("Failed to store selected text", err)
		return
	}

	logger.Debug("Selection updated", logger.Fields{
		"length": len(text),
	})
}
