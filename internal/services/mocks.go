package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/ghissues/internal/models"
)

type MockIssueLister struct {
	mock.Mock
}

func (m *MockIssueLister) ListOpenIssues(ctx context.Context) ([]models.Issue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}
