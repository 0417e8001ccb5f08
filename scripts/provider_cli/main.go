// Interactive smoke test for the text-generation provider. Type a section
// title, get the generated draft back. Useful for checking prompts and
// provider credentials without running the server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"draftsmith/internal/config"
	"draftsmith/internal/llm"
	"draftsmith/internal/prompts"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sprovider setup failed: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	registry, err := prompts.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sprompt templates failed to load: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	projectType := "word"
	if len(os.Args) > 1 {
		projectType = os.Args[1]
	}

	fmt.Printf("%sprovider:%s %s  %stype:%s %s\n", colorCyan, colorReset, provider.Name(), colorCyan, colorReset, projectType)
	fmt.Println("enter a section title (empty line to quit):")

	scanner := bufio.NewScanner(os.Stdin)
	var previous []string

	for {
		fmt.Printf("%s> %s", colorYellow, colorReset)
		if !scanner.Scan() {
			break
		}
		title := strings.TrimSpace(scanner.Text())
		if title == "" {
			break
		}

		request, err := registry.Generation(projectType, prompts.GenerationVars{
			Title:       title,
			ProjectName: "Provider smoke test",
			Previous:    previous,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", colorRed, err, colorReset)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		start := time.Now()
		text, err := provider.Generate(ctx, request)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%sgeneration failed: %v%s\n", colorRed, err, colorReset)
			continue
		}

		previous = append(previous, title)
		fmt.Printf("%s%s%s\n(%d chars in %s)\n\n", colorGreen, text, colorReset, len(text), time.Since(start).Round(time.Millisecond))
	}
}
