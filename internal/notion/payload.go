package notion

import (
	"fmt"
	"time"

	"github.com/jomei/notionapi"
	"github.com/takak2166/notion-clipper/internal/models"
)

// Property names the target database must expose
const (
	PropertyName        = "Name"
	PropertyDate        = "Date"
	PropertyDescription = "Description"
)

var requiredFields = []string{PropertyName, PropertyDate, PropertyDescription}

// DateProperty carries a calendar date as the plain YYYY-MM-DD string.
// notionapi.DateProperty always encodes a UTC timestamp.
type DateProperty struct {
	ID   string                 `json:"id,omitempty"`
	Type notionapi.PropertyType `json:"type,omitempty"`
	Date DateValue              `json:"date"`
}

// DateValue is the date object of a DateProperty
type DateValue struct {
	Start string `json:"start"`
}

func (p DateProperty) GetID() string {
	return p.ID
}

func (p DateProperty) GetType() notionapi.PropertyType {
	return p.Type
}

// referenceLabel is the visible text of the reference link
const referenceLabel = "ref"

// BuildPageRequest converts a form submission into a page in databaseID
func BuildPageRequest(databaseID string, req models.PageRequest) (*notionapi.PageCreateRequest, error) {
	properties := notionapi.Properties{
		PropertyName: notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: req.Name,
					},
				},
			},
		},
	}

	if req.Date != "" {
		if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
			return nil, &models.ValidationError{
				Field:   "date",
				Message: fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.Date),
			}
		}
		properties[PropertyDate] = DateProperty{
			Type: notionapi.PropertyTypeDate,
			Date: DateValue{Start: req.Date},
		}
	}

	if req.Description != "" || req.Reference != "" {
		properties[PropertyDescription] = notionapi.RichTextProperty{
			RichText: descriptionRichText(req.Description, req.Reference),
		}
	}

	pageParams := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       "database_id",
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
	}

	if req.Content != "" {
		pageParams.Children = []notionapi.Block{createParagraphBlock(req.Content)}
	}

	return pageParams, nil
}

// descriptionRichText puts the bold reference link first, then a single space
// separator, then the description
func descriptionRichText(description, reference string) []notionapi.RichText {
	var segments []notionapi.RichText

	if reference != "" {
		segments = append(segments, notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{
				Content: referenceLabel,
				Link:    &notionapi.Link{Url: reference},
			},
			Annotations: &notionapi.Annotations{Bold: true},
		})
		if description != "" {
			segments = append(segments, textSegment(" "))
		}
	}

	if description != "" {
		segments = append(segments, textSegment(description))
	}

	return segments
}

func textSegment(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{
			Content: content,
		},
	}
}

// createParagraphBlock creates a paragraph block
func createParagraphBlock(text string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: []notionapi.RichText{textSegment(text)},
		},
	}
}
