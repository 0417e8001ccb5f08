package postgres

import "fmt"

// TableNames holds dynamically prefixed table names so dev/test/prod can
// share one database without touching each other's rows.
type TableNames struct {
	Projects     string
	ContentItems string
	Refinements  string
	Revisions    string
	Outlines     string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Projects:     fmt.Sprintf("%sprojects", prefix),
		ContentItems: fmt.Sprintf("%scontent_items", prefix),
		Refinements:  fmt.Sprintf("%srefinements", prefix),
		Revisions:    fmt.Sprintf("%srevisions", prefix),
		Outlines:     fmt.Sprintf("%soutlines", prefix),
	}
}
