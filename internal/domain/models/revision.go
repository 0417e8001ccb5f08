package models

import (
	"time"
)

// RevisionItem is one (title, content) pair captured in a snapshot.
type RevisionItem struct {
	ItemID  string  `json:"id"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Ordinal int     `json:"ordinal"`
}

// RevisionSnapshot is the immutable copy of a project's content at
// capture time, stored as a JSONB document.
type RevisionSnapshot struct {
	Type  ProjectType    `json:"type"`
	Items []RevisionItem `json:"items"`
}

// Revision is a numbered point-in-time snapshot of a project. Numbers are
// gapless and strictly increasing per project, starting at 1. A revision
// never changes after creation, even when the live items are edited.
type Revision struct {
	ID             string           `json:"id" db:"id"`
	ProjectID      string           `json:"project_id" db:"project_id"`
	RevisionNumber int              `json:"revision_number" db:"revision_number"`
	Snapshot       RevisionSnapshot `json:"snapshot" db:"snapshot"`
	CreatedBy      string           `json:"created_by" db:"created_by"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}
