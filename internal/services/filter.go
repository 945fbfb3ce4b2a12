package services

import "github.com/thomas-vilte/ghissues/internal/models"

// FilterIssues keeps the records without a pull-request marker, in their
// original order. The result is never nil.
func FilterIssues(records []models.Issue) []models.Issue {
	issues := make([]models.Issue, 0, len(records))
	for _, record := range records {
		if record.Kind() == models.KindIssue {
			issues = append(issues, record)
		}
	}
	return issues
}
