package vcs

import (
	"context"

	"github.com/thomas-vilte/ghissues/internal/models"
)

// IssueLister fetches the issue records of one repository.
type IssueLister interface {
	// ListOpenIssues returns the first page of open records as the provider
	// sends them, pull requests included, in provider order.
	ListOpenIssues(ctx context.Context) ([]models.Issue, error)
}
