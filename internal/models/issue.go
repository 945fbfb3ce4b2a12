package models

import "fmt"

// RecordKind discriminates the two record kinds the issues endpoint returns.
type RecordKind int

const (
	KindIssue RecordKind = iota
	KindPullRequest
)

func (k RecordKind) String() string {
	switch k {
	case KindPullRequest:
		return "pull_request"
	default:
		return "issue"
	}
}

// PullRequest is an empty marker. Its presence on an Issue means the record
// is a pull request; the contents are never inspected.
type PullRequest struct{}

// Issue is one record of GET /repos/{owner}/{repo}/issues.
type Issue struct {
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
}

// Kind reports whether the record is a plain issue or a pull request.
func (i Issue) Kind() RecordKind {
	if i.PullRequest != nil {
		return KindPullRequest
	}
	return KindIssue
}

// IsPullRequest is shorthand for Kind() == KindPullRequest.
func (i Issue) IsPullRequest() bool {
	return i.Kind() == KindPullRequest
}

func (i Issue) String() string {
	pr := "none"
	if i.PullRequest != nil {
		pr = "{}"
	}
	return fmt.Sprintf("{Number:%d Title:%q PullRequest:%s}", i.Number, i.Title, pr)
}
