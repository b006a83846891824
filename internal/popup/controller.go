package popup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/takak2166/notion-clipper/internal/bus"
	"github.com/takak2166/notion-clipper/internal/logger"
	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/takak2166/notion-clipper/internal/settings"
)

// Error slots rendered next to the form
const (
	ErrorToken = "token-error"
	ErrorName  = "name-error"
	ErrorForm  = "form-error"
)

// SuccessTTL is how long a success indicator stays visible
const SuccessTTL = 3 * time.Second

// ErrBusy is returned when a submission is already in flight
var ErrBusy = errors.New("a submission is already in progress")

// Form mirrors the popup input fields
type Form struct {
	Name        string
	Date        string
	Description string
	Content     string
	Reference   string
	Token       string
	DatabaseID  string
}

// View is the rendered popup state
type View struct {
	Loading        bool
	SubmitDisabled bool
	ConfigHidden   bool
	Success        string
	ConfigSuccess  string
	Errors         map[string]string
}

type addResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type selectionResponse struct {
	SelectedText string `json:"selectedText"`
}

// Controller binds the popup form to the settings store and the background
type Controller struct {
	store   settings.Store
	runtime bus.Sender
	tab     bus.Sender // active tab, nil when there is none
	now     func() time.Time

	mu                 sync.Mutex
	form               Form
	view               View
	successUntil       time.Time
	configSuccessUntil time.Time
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithActiveTab lets Open query the active tab for a live selection
func WithActiveTab(tab bus.Sender) Option {
	return func(c *Controller) {
		c.tab = tab
	}
}

// New creates a controller; runtime reaches the background listener
func New(store settings.Store, runtime bus.Sender, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		runtime: runtime,
		now:     time.Now,
		view:    View{ConfigHidden: true, Errors: map[string]string{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form returns a copy of the current field values
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Update applies edits to the form fields
func (c *Controller) Update(edit func(f *Form)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	edit(&c.form)
}

// View returns the current rendered state, with expired success indicators hidden
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.view
	v.Errors = make(map[string]string, len(c.view.Errors))
	for k, msg := range c.view.Errors {
		v.Errors[k] = msg
	}

	now := c.now()
	if !now.Before(c.successUntil) {
		v.Success = ""
	}
	if !now.Before(c.configSuccessUntil) {
		v.ConfigSuccess = ""
	}
	return v
}

// Open pre-fills the form: today's date, saved credentials, and the
// selection stored by the content script or, failing that, the live one
func (c *Controller) Open(ctx context.Context) {
	c.mu.Lock()
	c.form.Date = c.today()
	c.mu.Unlock()

	c.loadConfiguration(ctx)
	c.loadSelectedText(ctx)
}

func (c *Controller) loadConfiguration(ctx context.Context) {
	values, err := c.store.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID)
	if err != nil {
		logger.Error("Failed to load configuration", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token := values[models.KeyNotionToken]; token != "" {
		c.form.Token = token
	}
	if databaseID := values[models.KeyDatabaseID]; databaseID != "" {
		c.form.DatabaseID = databaseID
	}
}

func (c *Controller) loadSelectedText(ctx context.Context) {
	values, err := c.store.Get(ctx, models.KeySelectedText)
	if err != nil {
		logger.Error("Failed to load selected text", err)
		return
	}

	if text := strings.TrimSpace(values[models.KeySelectedText]); text != "" {
		c.setContent(text)
		return
	}

	if c.tab == nil {
		return
	}

	var resp selectionResponse
	if err := c.tab.Send(ctx, bus.GetSelectedText, nil, &resp); err != nil {
		logger.Debug("No selection from active tab", logger.Fields{"error": err.Error()})
		return
	}
	if resp.SelectedText != "" {
		c.setContent(resp.SelectedText)
	}
}

func (c *Controller) setContent(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Content = text
}

// SaveConfig persists the token and database ID
func (c *Controller) SaveConfig(ctx context.Context) error {
	c.mu.Lock()
	token := strings.TrimSpace(c.form.Token)
	databaseID := strings.TrimSpace(c.form.DatabaseID)
	c.mu.Unlock()

	if token == "" || databaseID == "" {
		err := &models.ValidationError{Field: "token", Message: "Both token and database ID are required"}
		c.showError(ErrorToken, err.Message)
		return err
	}

	if err := c.store.Set(ctx, map[string]string{
		models.KeyNotionToken: token,
		models.KeyDatabaseID:  databaseID,
	}); err != nil {
		logger.Error("Failed to save configuration", err)
		c.showError(ErrorToken, "Failed to save configuration")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Token, c.form.DatabaseID = token, databaseID
	c.view.ConfigSuccess = "Configuration saved!"
	c.configSuccessUntil = c.now().Add(SuccessTTL)
	delete(c.view.Errors, ErrorToken)
	return nil
}

// Submit sends the form to the background and renders the outcome.
// The busy state is cleared whatever the outcome.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.view.SubmitDisabled {
		c.mu.Unlock()
		return ErrBusy
	}

	req := models.PageRequest{
		Name:        strings.TrimSpace(c.form.Name),
		Date:        c.form.Date,
		Description: strings.TrimSpace(c.form.Description),
		Content:     strings.TrimSpace(c.form.Content),
		Reference:   strings.TrimSpace(c.form.Reference),
	}
	if req.Name == "" {
		c.view.Errors[ErrorName] = "Name is required"
		c.mu.Unlock()
		return &models.ValidationError{Field: "name", Message: "Name is required"}
	}

	c.view.Loading = true
	c.view.SubmitDisabled = true
	c.view.Errors = map[string]string{}
	c.view.Success = ""
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.view.Loading = false
		c.view.SubmitDisabled = false
		c.mu.Unlock()
	}()

	var resp addResponse
	if err := c.runtime.Send(ctx, bus.AddToNotion, req, &resp); err != nil {
		c.showError(ErrorForm, "Error: "+err.Error())
		return err
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Failed to add to Notion"
		}
		c.showError(ErrorForm, msg)
		return errors.New(msg)
	}

	c.mu.Lock()
	c.view.Success = "Successfully added to Notion! ✓"
	c.successUntil = c.now().Add(SuccessTTL)
	c.resetFields()
	c.mu.Unlock()

	if err := c.store.Set(ctx, map[string]string{models.KeySelectedText: ""}); err != nil {
		logger.Warn("Failed to clear selected text", err)
	}

	return nil
}

// Clear resets the request fields and hides all messages
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetFields()
	c.view.Errors = map[string]string{}
	c.view.Success = ""
}

// ToggleConfig shows or hides the configuration section
func (c *Controller) ToggleConfig() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.ConfigHidden = !c.view.ConfigHidden
}

// HandleKey reports whether the key press was consumed. Ctrl+A toggles the
// configuration section instead of selecting all.
func (c *Controller) HandleKey(ctrl bool, key string) bool {
	if ctrl && strings.EqualFold(key, "a") {
		c.ToggleConfig()
		return true
	}
	return false
}

func (c *Controller) showError(slot, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Errors[slot] = msg
}

// resetFields must be called with c.mu held
func (c *Controller) resetFields() {
	c.form.Name = ""
	c.form.Date = c.today()
	c.form.Description = ""
	c.form.Content = ""
	c.form.Reference = ""
}

func (c *Controller) today() string {
	return c.now().Local().Format(models.DateLayout)
}
