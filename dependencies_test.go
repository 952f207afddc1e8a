package zenhubbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovern/zenhub-bridge/mock"
)

func TestGetDependencies(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`{
		"dependencies": [
			{"blocking": {"issue_number": 3953, "repo_id": 1234567}, "blocked": {"issue_number": 1342, "repo_id": 1234567}},
			{"blocking": {"issue_number": 5, "repo_id": 987}, "blocked": {"issue_number": 1342, "repo_id": 1234567}}
		]
	}`)}
	c := newTestClient(tr)

	deps, err := c.GetDependencies(context.Background(), 1234567)
	require.NoError(t, err)
	require.Len(t, deps.Dependencies, 2)
	assert.Equal(t, 3953, deps.Dependencies[0].Blocking.IssueNumber)
	assert.Equal(t, "/p1/repositories/1234567/dependencies", tr.LastRequest().URL.Path)
}

func TestCreateDependency(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`{
		"blocking": {"repo_id": 92563409, "issue_number": 14},
		"blocked": {"repo_id": 92563409, "issue_number": 13}
	}`)}
	c := newTestClient(tr)

	dep, err := c.CreateDependency(context.Background(),
		Issue{RepoID: 92563409, IssueNumber: 14},
		Issue{RepoID: 92563409, IssueNumber: 13})
	require.NoError(t, err)
	assert.Equal(t, 14, dep.Blocking.IssueNumber)
	assert.Equal(t, 13, dep.Blocked.IssueNumber)

	req := tr.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/p1/dependencies", req.URL.Path)
	assert.JSONEq(t, `{
		"blocking": {"repo_id": 92563409, "issue_number": 14},
		"blocked": {"repo_id": 92563409, "issue_number": 13}
	}`, string(tr.LastBody()))
}

func TestRemoveDependency(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`{}`)}
	c := newTestClient(tr)

	err := c.RemoveDependency(context.Background(),
		Issue{RepoID: 92563409, IssueNumber: 14},
		Issue{RepoID: 92563409, IssueNumber: 13})
	require.NoError(t, err)

	req := tr.LastRequest()
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/p1/dependencies", req.URL.Path)
	assert.NotEmpty(t, tr.LastBody(), "the relation to delete travels in the body")
}
