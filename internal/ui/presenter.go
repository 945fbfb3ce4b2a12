package ui

import (
	"fmt"
	"io"

	"github.com/thomas-vilte/ghissues/internal/models"
)

// PrintIssues writes the issues to w as a single debug line, for example
// [{Number:1 Title:"Bug A" PullRequest:none}].
func PrintIssues(w io.Writer, issues []models.Issue) {
	if issues == nil {
		issues = []models.Issue{}
	}
	_, _ = fmt.Fprintln(w, issues)
}
