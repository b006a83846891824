package notion

import (
	"fmt"
	"strings"
)

// ConfigError is returned when the token or database ID has not been saved
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "Notion configuration not found. Please configure your Notion token and database ID."
}

// SchemaError lists the required properties the target database lacks
type SchemaError struct {
	DatabaseID string
	Missing    []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("Database is missing required fields: %s", strings.Join(e.Missing, ", "))
}

// RemoteError represents a non-2xx answer from the Notion API
type RemoteError struct {
	Op      string // "access database", "create page"
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Op, e.Message)
}
