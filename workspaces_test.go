package zenhubbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovern/zenhub-bridge/mock"
)

func TestGetWorkspaces(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`[
		{"name": "Design and UX", "description": "", "id": "5d0a7a9741fd098f6b7f58ac", "repositories": [12345678]},
		{"name": "Roadmap", "description": "Feature planning", "id": "5d0a7cea41fd098f6b7f58b8", "repositories": [12345678, 32143124]}
	]`)}
	c := newTestClient(tr)

	workspaces, err := c.GetWorkspaces(context.Background(), 12345678)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "Roadmap", workspaces[1].Name)
	assert.Equal(t, []int{12345678, 32143124}, workspaces[1].Repositories)
	assert.Equal(t, "/p2/repositories/12345678/workspaces", tr.LastRequest().URL.Path)
}

func TestGetWorkspacesMissingRepositories(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`[
		{"name": "Design and UX", "description": "", "id": "5d0a7a9741fd098f6b7f58ac"}
	]`)}
	c := newTestClient(tr)

	_, err := c.GetWorkspaces(context.Background(), 12345678)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

const boardJSON = `{
	"pipelines": [
		{
			"id": "595d430add03f01d32460080",
			"name": "New Issues",
			"issues": [
				{"issue_number": 279, "estimate": {"value": 40}, "position": 0, "is_epic": true},
				{"issue_number": 142, "is_epic": false, "position": "top"}
			]
		},
		{
			"id": "595d430add03f01d32460081",
			"name": "Backlog",
			"issues": [
				{"issue_number": 303, "estimate": {"value": 40}, "position": 3, "is_epic": false}
			]
		}
	]
}`

func TestGetRepositoryBoard(t *testing.T) {
	tr := &mock.Transport{Body: []byte(boardJSON)}
	c := newTestClient(tr)

	board, err := c.GetRepositoryBoard(context.Background(), "5d0a7a9741fd098f6b7f58ac", 12345678)
	require.NoError(t, err)
	require.Len(t, board.Pipelines, 2)
	assert.Equal(t, "New Issues", board.Pipelines[0].Name)

	issues := board.Pipelines[0].Issues
	require.Len(t, issues, 2)
	assert.Equal(t, "0", issues[0].Position.String())
	assert.Equal(t, "top", issues[1].Position.String())

	assert.Equal(t, "/p2/workspaces/5d0a7a9741fd098f6b7f58ac/repositories/12345678/board", tr.LastRequest().URL.Path)
}

func TestGetOldestRepositoryBoard(t *testing.T) {
	tr := &mock.Transport{Body: []byte(boardJSON)}
	c := newTestClient(tr)

	board, err := c.GetOldestRepositoryBoard(context.Background(), 12345678)
	require.NoError(t, err)
	require.Len(t, board.Pipelines, 2)
	assert.Equal(t, "/p1/repositories/12345678/board", tr.LastRequest().URL.Path)
}
