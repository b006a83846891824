package models

// Settings Store keys
const (
	KeyNotionToken  = "notionToken"
	KeyDatabaseID   = "databaseId"
	KeySelectedText = "selectedText"
)

// DateLayout is the ISO-8601 calendar date form used by the date field
const DateLayout = "2006-01-02"

// Credentials holds the Notion integration token and target database
type Credentials struct {
	Token      string
	DatabaseID string
}

// Complete reports whether both credential fields are present
func (c Credentials) Complete() bool {
	return c.Token != "" && c.DatabaseID != ""
}

// PageRequest represents one submission from the popup form
type PageRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Reference   string `json:"reference,omitempty"` // URL rendered as a "ref" link
}
