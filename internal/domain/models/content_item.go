package models

import (
	"time"
)

// ContentItem is one section of a Word project or one slide of a PowerPoint
// project. Which of the two it is follows from the owning project's type;
// there is no separate hierarchy per kind. Items are unique per
// (project, ordinal) and display/generation order follows the ordinal.
type ContentItem struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	Ordinal     int       `json:"ordinal" db:"ordinal"`
	Title       string    `json:"title" db:"title"`
	Content     *string   `json:"content" db:"content"` // NULL until generated
	IsGenerated bool      `json:"is_generated" db:"is_generated"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Text returns the item's content or "" when none has been generated yet.
func (i *ContentItem) Text() string {
	if i.Content == nil {
		return ""
	}
	return *i.Content
}
