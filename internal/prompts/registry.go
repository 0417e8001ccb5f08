package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"

	"draftsmith/internal/llm"
)

//go:embed config/*.yaml
var configFiles embed.FS

// templateSet is the on-disk shape of one project type's prompt file.
type templateSet struct {
	Type     string `yaml:"type"`
	System   string `yaml:"system"`
	Generate string `yaml:"generate"`
	Refine   string `yaml:"refine"`
}

// compiledSet holds the parsed templates for one project type.
type compiledSet struct {
	system   string
	generate *template.Template
	refine   *template.Template
}

// GenerationVars fills the generate template.
type GenerationVars struct {
	Title       string
	ProjectName string
	Context     string
	Previous    []string // titles already generated, for continuity
}

// RefinementVars fills the refine template.
type RefinementVars struct {
	Instruction string
	Content     string
}

// Registry holds the prompt templates per project type, loaded from
// embedded YAML files at startup.
type Registry struct {
	sets map[string]*compiledSet
	mu   sync.RWMutex
}

// NewRegistry loads and compiles the embedded prompt files.
func NewRegistry() (*Registry, error) {
	r := &Registry{sets: make(map[string]*compiledSet)}

	for _, name := range []string{"word", "powerpoint"} {
		if err := r.loadFile(name); err != nil {
			return nil, fmt.Errorf("failed to load %s prompts: %w", name, err)
		}
	}

	return r, nil
}

func (r *Registry) loadFile(name string) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var set templateSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	generate, err := template.New(name + ".generate").Parse(set.Generate)
	if err != nil {
		return fmt.Errorf("parse generate template: %w", err)
	}
	refine, err := template.New(name + ".refine").Parse(set.Refine)
	if err != nil {
		return fmt.Errorf("parse refine template: %w", err)
	}

	r.mu.Lock()
	r.sets[set.Type] = &compiledSet{
		system:   strings.TrimSpace(set.System),
		generate: generate,
		refine:   refine,
	}
	r.mu.Unlock()

	return nil
}

// Generation renders the content-generation request for a project type.
func (r *Registry) Generation(projectType string, vars GenerationVars) (llm.Request, error) {
	set, err := r.get(projectType)
	if err != nil {
		return llm.Request{}, err
	}

	var sb strings.Builder
	if err := set.generate.Execute(&sb, vars); err != nil {
		return llm.Request{}, fmt.Errorf("render generate prompt: %w", err)
	}

	return llm.Request{System: set.system, Prompt: sb.String()}, nil
}

// Refinement renders the refinement request for a project type.
func (r *Registry) Refinement(projectType string, vars RefinementVars) (llm.Request, error) {
	set, err := r.get(projectType)
	if err != nil {
		return llm.Request{}, err
	}

	var sb strings.Builder
	if err := set.refine.Execute(&sb, vars); err != nil {
		return llm.Request{}, fmt.Errorf("render refine prompt: %w", err)
	}

	return llm.Request{System: set.system, Prompt: sb.String()}, nil
}

func (r *Registry) get(projectType string) (*compiledSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[projectType]
	if !ok {
		return nil, fmt.Errorf("unknown project type: %s", projectType)
	}
	return set, nil
}
