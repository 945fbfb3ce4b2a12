package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_Kind(t *testing.T) {
	t.Run("plain issue", func(t *testing.T) {
		issue := Issue{Number: 1, Title: "Bug A"}
		assert.Equal(t, KindIssue, issue.Kind())
		assert.False(t, issue.IsPullRequest())
	})

	t.Run("empty marker is enough to be a pull request", func(t *testing.T) {
		issue := Issue{Number: 2, Title: "Feature B", PullRequest: &PullRequest{}}
		assert.Equal(t, KindPullRequest, issue.Kind())
		assert.True(t, issue.IsPullRequest())
	})
}

func TestIssue_DecodeMarker(t *testing.T) {
	body := `[{"number":1,"title":"Bug A"},{"number":2,"title":"Feature B","pull_request":{}},{"number":3,"title":"Bug C","pull_request":{"url":"x"}}]`

	var issues []Issue
	require.NoError(t, json.Unmarshal([]byte(body), &issues))
	require.Len(t, issues, 3)

	assert.Equal(t, KindIssue, issues[0].Kind())
	assert.Equal(t, KindPullRequest, issues[1].Kind())
	assert.Equal(t, KindPullRequest, issues[2].Kind())
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, `{Number:1 Title:"Bug A" PullRequest:none}`, Issue{Number: 1, Title: "Bug A"}.String())
	assert.Equal(t, `{Number:2 Title:"B" PullRequest:{}}`, Issue{Number: 2, Title: "B", PullRequest: &PullRequest{}}.String())
	assert.Equal(t, "pull_request", KindPullRequest.String())
}
