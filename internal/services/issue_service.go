package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/ghissues/internal/errors"
	"github.com/thomas-vilte/ghissues/internal/logger"
	"github.com/thomas-vilte/ghissues/internal/models"
	"github.com/thomas-vilte/ghissues/internal/vcs"
)

type IssueService struct {
	lister vcs.IssueLister
}

func NewIssueService(lister vcs.IssueLister) *IssueService {
	return &IssueService{lister: lister}
}

// OpenIssues fetches the open records and drops pull requests.
//
// Transport and HTTP status failures degrade to an empty list. Any other
// error, such as an undecodable body, is returned to the caller.
func (s *IssueService) OpenIssues(ctx context.Context) ([]models.Issue, error) {
	records, err := s.lister.ListOpenIssues(ctx)
	if err != nil {
		if domainErrors.IsRecoverable(err) {
			logger.Info(ctx, "issue fetch failed, returning empty list", "error", err)
			return []models.Issue{}, nil
		}
		return nil, err
	}

	issues := FilterIssues(records)
	logger.Debug(ctx, "filtered pull requests", "received", len(records), "kept", len(issues))

	return issues, nil
}
