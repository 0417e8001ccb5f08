package config

const (
	// MaxProjectNameLength is the maximum length for project names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxProjectNameLength = 255

	// MaxItemTitleLength is the maximum length for section/slide titles.
	// Same bound as project names for consistency.
	MaxItemTitleLength = 255

	// MaxOutlineTitles caps how many sections or slides one project can
	// configure. Each title triggers a provider call during generate-all.
	MaxOutlineTitles = 100

	// MaxOutlineContextLength bounds the free-text context handed to the
	// provider with every generation call.
	MaxOutlineContextLength = 8000

	// MaxRefinePromptLength bounds a single refinement instruction.
	MaxRefinePromptLength = 4000
)
