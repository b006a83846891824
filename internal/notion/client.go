package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/samber/lo"
	"github.com/takak2166/notion-clipper/internal/bus"
	"github.com/takak2166/notion-clipper/internal/logger"
	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/takak2166/notion-clipper/internal/settings"
)

// ClientFactory builds an API client for an integration token
type ClientFactory func(token string) NotionClient

// Creator creates pages in the configured Notion database.
// It owns the credentials: they are read from the settings store on every
// call and never leave this component.
type Creator struct {
	store     settings.Store
	newClient ClientFactory
}

// Option configures a Creator
type Option func(*Creator)

// WithClientFactory replaces the HTTP-backed client, e.g. with a mock
func WithClientFactory(f ClientFactory) Option {
	return func(c *Creator) {
		c.newClient = f
	}
}

// WithTransport sends API requests through transport instead of
// http.DefaultTransport
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Creator) {
		c.newClient = httpClientFactory(transport)
	}
}

// New creates a Creator reading credentials from store
func New(store settings.Store, opts ...Option) *Creator {
	c := &Creator{
		store:     store,
		newClient: httpClientFactory(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddToNotionResponse is the reply to an ADD_TO_NOTION message
type AddToNotionResponse struct {
	Success bool            `json:"success"`
	Data    *notionapi.Page `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Register installs the ADD_TO_NOTION listener on b
func (c *Creator) Register(b *bus.Bus) {
	b.Handle(bus.AddToNotion, func(ctx context.Context, msg bus.Message) (interface{}, error) {
		var req models.PageRequest
		if err := msg.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode page request: %w", err)
		}

		page, err := c.AddToNotion(ctx, req)
		if err != nil {
			logger.Error("Failed to add to Notion", err, logger.Fields{
				"message_id": msg.ID,
				"name":       req.Name,
			})
			return AddToNotionResponse{Success: false, Error: err.Error()}, nil
		}

		return AddToNotionResponse{Success: true, Data: page}, nil
	})
}

// AddToNotion validates the target database and creates one page for req.
// Each call issues a new create request: resending the same request yields
// a second page.
func (c *Creator) AddToNotion(ctx context.Context, req models.PageRequest) (*notionapi.Page, error) {
	creds, err := c.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	pageParams, err := BuildPageRequest(creds.DatabaseID, req)
	if err != nil {
		return nil, err
	}

	client := c.newClient(creds.Token)

	if err := c.validateDatabase(ctx, client, creds.DatabaseID); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(pageParams); err == nil {
		logger.Debug("Sending to Notion", logger.Fields{
			"payload": string(payload),
		})
	}

	page, err := client.Page().Create(ctx, pageParams)
	if err != nil {
		return nil, remoteError("create page", err, func(apiErr *notionapi.Error) string {
			if apiErr.Message != "" {
				return apiErr.Message
			}
			return http.StatusText(apiErr.Status)
		})
	}

	logger.Info("Successfully created Notion page", logger.Fields{
		"name":    req.Name,
		"page_id": page.ID,
	})

	return page, nil
}

func (c *Creator) loadCredentials(ctx context.Context) (models.Credentials, error) {
	values, err := c.store.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to read Notion configuration: %w", err)
	}

	creds := models.Credentials{
		Token:      values[models.KeyNotionToken],
		DatabaseID: values[models.KeyDatabaseID],
	}
	if !creds.Complete() {
		var missing []string
		if creds.Token == "" {
			missing = append(missing, models.KeyNotionToken)
		}
		if creds.DatabaseID == "" {
			missing = append(missing, models.KeyDatabaseID)
		}
		return models.Credentials{}, &ConfigError{Missing: missing}
	}

	return creds, nil
}

// validateDatabase checks that the database exposes every required property,
// matching names case-insensitively
func (c *Creator) validateDatabase(ctx context.Context, client NotionClient, databaseID string) error {
	db, err := client.Database().Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return remoteError("access database", err, func(apiErr *notionapi.Error) string {
			return fmt.Sprintf("%d %s", apiErr.Status, http.StatusText(apiErr.Status))
		})
	}

	names := lo.Keys(db.Properties)
	missing := lo.Filter(requiredFields, func(field string, _ int) bool {
		return !lo.ContainsBy(names, func(name string) bool {
			return strings.EqualFold(name, field)
		})
	})

	if len(missing) > 0 {
		return &SchemaError{DatabaseID: databaseID, Missing: missing}
	}

	return nil
}

// remoteError turns an API error answer into a RemoteError; anything else
// never reached the API and is wrapped as is
func remoteError(op string, err error, message func(*notionapi.Error) string) error {
	var apiErr *notionapi.Error
	var rateErr *notionapi.RateLimitedError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &rateErr):
		apiErr = &notionapi.Error{Status: http.StatusTooManyRequests}
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	return &RemoteError{
		Op:      op,
		Status:  apiErr.Status,
		Message: message(apiErr),
	}
}
