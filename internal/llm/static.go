package llm

import (
	"context"
	"fmt"
	"strings"
)

// StaticProvider is a deterministic offline provider for development and
// tests. It needs no API key and never leaves the process: the output is a
// pure function of the request, so test assertions stay stable.
type StaticProvider struct{}

// NewStaticProvider creates the offline provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string { return "static" }

// Generate echoes the request back as a small structured draft.
func (p *StaticProvider) Generate(_ context.Context, req Request) (string, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", fmt.Errorf("static provider: empty prompt")
	}

	var sb strings.Builder
	sb.WriteString("[draft]\n\n")
	sb.WriteString(firstLine(prompt))
	sb.WriteString("\n\nThis placeholder text was produced by the offline provider. ")
	sb.WriteString("Configure a real provider to generate actual content.")
	return sb.String(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
