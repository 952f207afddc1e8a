package zenhubbridge

import "context"

// GetWorkspaces lists every workspace containing the repository.
func (c *Client) GetWorkspaces(ctx context.Context, repoID int) ([]Workspace, error) {
	params := Params{"repo_id": repoID}
	var out []Workspace
	if err := c.callModel(ctx, OpGetWorkspaces, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRepositoryBoard returns the board for a repository within the given
// workspace.
func (c *Client) GetRepositoryBoard(ctx context.Context, workspaceID string, repoID int) (*Board, error) {
	params := Params{"workspace_id": workspaceID, "repo_id": repoID}
	var out Board
	if err := c.callModel(ctx, OpGetRepositoryBoard, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOldestRepositoryBoard returns the repository's board in the oldest
// workspace containing it.
func (c *Client) GetOldestRepositoryBoard(ctx context.Context, repoID int) (*Board, error) {
	params := Params{"repo_id": repoID}
	var out Board
	if err := c.callModel(ctx, OpGetOldestRepositoryBoard, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
