package llm

import "context"

// Request is one text-generation call. System carries the role/style
// instructions, Prompt the concrete task (section title, refinement
// instruction plus current text, and so on).
type Request struct {
	System string
	Prompt string
}

// Provider abstracts the external text-generation capability so the
// generation and refinement services never depend on a concrete vendor.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name returns the provider name for logging.
	Name() string

	// Generate produces text for the request or fails with the provider's
	// error. Callers treat any error as a generation failure; no partial
	// state is written on error.
	Generate(ctx context.Context, req Request) (string, error)
}
