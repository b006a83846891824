package extension

import (
	"github.com/takak2166/notion-clipper/internal/bus"
	"github.com/takak2166/notion-clipper/internal/notion"
	"github.com/takak2166/notion-clipper/internal/popup"
	"github.com/takak2166/notion-clipper/internal/selection"
	"github.com/takak2166/notion-clipper/internal/settings"
)

// Extension hosts the background, content script and popup contexts.
// They share the settings store and otherwise talk only over the buses.
type Extension struct {
	Store      settings.Store
	Runtime    *bus.Bus
	ActiveTab  *bus.Bus
	Background *notion.Creator
	Content    *selection.Observer
}

// Config selects the collaborators an Extension is built from
type Config struct {
	Store            settings.Store
	Page             selection.Page
	CreatorOptions   []notion.Option
	SelectionOptions []selection.Option
}

// New wires the background listener onto the runtime bus and the content
// script listener onto the active tab bus
func New(cfg Config) *Extension {
	e := &Extension{
		Store:      cfg.Store,
		Runtime:    bus.New("runtime"),
		ActiveTab:  bus.New("tab"),
		Background: notion.New(cfg.Store, cfg.CreatorOptions...),
		Content:    selection.NewObserver(cfg.Page, cfg.Store, cfg.SelectionOptions...),
	}

	e.Background.Register(e.Runtime)
	e.Content.Register(e.ActiveTab)

	return e
}

// OpenPopup creates a fresh popup context, as each click on the action does
func (e *Extension) OpenPopup(opts ...popup.Option) *popup.Controller {
	opts = append([]popup.Option{popup.WithActiveTab(e.ActiveTab)}, opts...)
	return popup.New(e.Store, e.Runtime, opts...)
}

// Close stops pending content script work
func (e *Extension) Close() {
	e.Content.Close()
}
