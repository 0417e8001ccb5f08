package prompts

import (
	"strings"
	"testing"
)

func TestGenerationPrompt(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	req, err := registry.Generation("word", GenerationVars{
		Title:       "Getting Started",
		ProjectName: "User Guide",
		Context:     "A guide for new users.",
		Previous:    []string{"Overview"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if req.System == "" {
		t.Error("system prompt is empty")
	}
	for _, want := range []string{"Getting Started", "User Guide", "A guide for new users.", "Overview"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestGenerationPromptOmitsEmptySections(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	req, err := registry.Generation("powerpoint", GenerationVars{
		Title:       "Roadmap",
		ProjectName: "Q3 Review",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(req.Prompt, "Presentation context") {
		t.Errorf("prompt should omit the context section when Context is empty:\n%s", req.Prompt)
	}
	if strings.Contains(req.Prompt, "already written") {
		t.Errorf("prompt should omit the continuity section when Previous is empty:\n%s", req.Prompt)
	}
}

func TestRefinementPrompt(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	req, err := registry.Refinement("word", RefinementVars{
		Instruction: "make it punchier",
		Content:     "the current body text",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(req.Prompt, "make it punchier") {
		t.Error("prompt missing instruction")
	}
	if !strings.Contains(req.Prompt, "the current body text") {
		t.Error("prompt missing current content")
	}
}

func TestUnknownProjectType(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	if _, err := registry.Generation("spreadsheet", GenerationVars{Title: "x"}); err == nil {
		t.Error("expected error for unknown project type")
	}
	if _, err := registry.Refinement("spreadsheet", RefinementVars{}); err == nil {
		t.Error("expected error for unknown project type")
	}
}
