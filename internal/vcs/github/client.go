package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/ghissues/internal/errors"
	"github.com/thomas-vilte/ghissues/internal/logger"
	"github.com/thomas-vilte/ghissues/internal/models"
	"github.com/thomas-vilte/ghissues/internal/vcs"
	"github.com/thomas-vilte/ghissues/internal/version"
	"golang.org/x/oauth2"
)

var _ vcs.IssueLister = (*GitHubClient)(nil)

type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	owner         string
	repo          string
}

// Option customizes the underlying go-github client.
type Option func(*github.Client)

// WithBaseURL points the client at another API root, such as a test server.
// The URL must end with a trailing slash.
func WithBaseURL(u *url.URL) Option {
	return func(c *github.Client) {
		c.BaseURL = u
	}
}

func NewGitHubClient(owner, repo, token string, opts ...Option) *GitHubClient {
	base := &http.Client{Transport: newHeaderTransport(http.DefaultTransport, version.UserAgent())}

	httpClient := base
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	client.UserAgent = version.UserAgent()
	for _, opt := range opts {
		opt(client)
	}

	return &GitHubClient{
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
	}
}

func NewGitHubClientWithServices(issuesService IssuesService, owner string, repo string) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
	}
}

func (ghc *GitHubClient) repoSlug() string {
	return fmt.Sprintf("%s/%s", ghc.owner, ghc.repo)
}

// ListOpenIssues performs a single ListByRepo call. The Link header is
// inspected but never followed, so at most one page comes back.
func (ghc *GitHubClient) ListOpenIssues(ctx context.Context) ([]models.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: "open",
	}

	logger.Debug(ctx, "listing open issues", "repo", ghc.repoSlug())

	issues, resp, err := ghc.issuesService.ListByRepo(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, ghc.classifyError(err, resp)
	}

	if resp != nil && resp.Response != nil {
		if next, ok := NextPageLink(resp.Header); ok {
			logger.Debug(ctx, "pagination link present, not followed", "next_link", next)
		}
	}

	// A 2xx with an empty or null body decodes to nil without an error.
	if issues == nil {
		return nil, domainErrors.ErrDecodeIssues.
			WithError(errors.New("response body is not a JSON array")).
			WithContext("repo", ghc.repoSlug())
	}

	records := make([]models.Issue, 0, len(issues))
	for i, issue := range issues {
		record, err := toModel(issue)
		if err != nil {
			return nil, domainErrors.ErrDecodeIssues.
				WithError(err).
				WithContext("repo", ghc.repoSlug()).
				WithContext("index", i)
		}
		records = append(records, record)
	}

	logger.Debug(ctx, "received issue records", "received", len(records))

	return records, nil
}

// toModel requires the fields go-github leaves optional: every element must
// be an object with a non-negative number and a title.
func toModel(issue *github.Issue) (models.Issue, error) {
	switch {
	case issue == nil:
		return models.Issue{}, errors.New("issue record is null")
	case issue.Number == nil:
		return models.Issue{}, errors.New("issue record has no number")
	case *issue.Number < 0:
		return models.Issue{}, fmt.Errorf("issue number %d is negative", *issue.Number)
	case issue.Title == nil:
		return models.Issue{}, fmt.Errorf("issue #%d has no title", *issue.Number)
	}

	record := models.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
	}
	if issue.PullRequestLinks != nil {
		record.PullRequest = &models.PullRequest{}
	}
	return record, nil
}

func (ghc *GitHubClient) classifyError(err error, resp *github.Response) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return domainErrors.ErrGitHubRateLimit.
			WithError(err).
			WithContext("repo", ghc.repoSlug()).
			WithContext("status_code", statusCode(resp))
	}

	if resp == nil || resp.Response == nil {
		return domainErrors.ErrGitHubUnreachable.
			WithError(err).
			WithContext("repo", ghc.repoSlug())
	}

	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return domainErrors.ErrDecodeIssues.
			WithError(err).
			WithContext("repo", ghc.repoSlug()).
			WithContext("status_code", code)
	}

	var appErr *domainErrors.AppError
	switch code {
	case http.StatusUnauthorized:
		appErr = domainErrors.ErrGitHubTokenInvalid
	case http.StatusNotFound:
		appErr = domainErrors.ErrRepositoryNotFound
	case http.StatusTooManyRequests:
		appErr = domainErrors.ErrGitHubRateLimit.WithContext("retry_after", resp.Header.Get("Retry-After"))
	default:
		appErr = domainErrors.ErrGitHubStatus
	}

	return appErr.
		WithError(err).
		WithContext("repo", ghc.repoSlug()).
		WithContext("status_code", code)
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
