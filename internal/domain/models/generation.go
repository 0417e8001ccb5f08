package models

// ItemResult is the outcome of generating a single content item. A failed
// item carries the provider error message; the rest of the batch is
// unaffected.
type ItemResult struct {
	ItemID    string `json:"item_id"`
	Title     string `json:"title"`
	Generated bool   `json:"generated"`
	Error     string `json:"error,omitempty"`
}

// GenerationReport summarizes a generation batch. Items appear in ordinal
// order; GeneratedCount counts successes only.
type GenerationReport struct {
	ProjectID      string       `json:"project_id"`
	GeneratedCount int          `json:"generated_count"`
	FailedCount    int          `json:"failed_count"`
	Items          []ItemResult `json:"items"`
}

// AllFailed reports whether no item in the batch succeeded. Callers use it
// to distinguish a degraded batch from a dead provider.
func (r *GenerationReport) AllFailed() bool {
	return len(r.Items) > 0 && r.GeneratedCount == 0
}
