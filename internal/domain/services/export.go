package services

import (
	"context"
)

// ExportResult is a rendered document ready to stream to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService serializes a project's items into a .docx or .pptx
// byte-stream depending on the project type.
type ExportService interface {
	ExportProject(ctx context.Context, projectID, ownerID string) (*ExportResult, error)
}
