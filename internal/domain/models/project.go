package models

import (
	"time"
)

// ProjectType discriminates Word documents from PowerPoint decks.
// It also decides the shape of the project's outline (section titles
// vs slide titles) and the export format.
type ProjectType string

const (
	ProjectTypeWord       ProjectType = "word"
	ProjectTypePowerPoint ProjectType = "powerpoint"
)

// Valid reports whether the type is one of the supported document kinds.
func (t ProjectType) Valid() bool {
	return t == ProjectTypeWord || t == ProjectTypePowerPoint
}

// ItemNoun returns the user-facing name of a content item for this type.
func (t ProjectType) ItemNoun() string {
	if t == ProjectTypePowerPoint {
		return "slide"
	}
	return "section"
}

type Project struct {
	ID          string      `json:"id" db:"id"`
	OwnerID     string      `json:"owner_id" db:"owner_id"`
	Name        string      `json:"name" db:"name"`
	Description *string     `json:"description,omitempty" db:"description"`
	Type        ProjectType `json:"type" db:"project_type"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}
