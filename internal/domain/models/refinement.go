package models

import (
	"time"
)

// Feedback is the optional reader reaction stored with a refinement.
type Feedback string

const (
	FeedbackNone    Feedback = ""
	FeedbackLike    Feedback = "like"
	FeedbackDislike Feedback = "dislike"
)

// Valid reports whether the feedback value is one of the known reactions.
func (f Feedback) Valid() bool {
	return f == FeedbackNone || f == FeedbackLike || f == FeedbackDislike
}

// Refinement is one logged attempt to change a content item's text.
// Records are append-only: the current text lives on the ContentItem,
// the log keeps the history in created_at order.
type Refinement struct {
	ID            string    `json:"id" db:"id"`
	ContentItemID string    `json:"content_item_id" db:"content_item_id"`
	Prompt        *string   `json:"prompt,omitempty" db:"prompt"` // NULL for manual edits
	Content       string    `json:"content" db:"content"`         // resulting text
	Feedback      Feedback  `json:"feedback,omitempty" db:"feedback"`
	Comments      *string   `json:"comments,omitempty" db:"comments"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
