package models

import (
	"time"
)

// Outline is a project's generation configuration: the ordered list of
// section or slide titles plus optional free-text context handed to the
// text-generation provider. One outline per project.
type Outline struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Titles    []string  `json:"titles" db:"titles"` // JSONB array, ordinal = index
	Context   *string   `json:"context,omitempty" db:"context"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContextText returns the free-text context or "" when unset.
func (o *Outline) ContextText() string {
	if o.Context == nil {
		return ""
	}
	return *o.Context
}
