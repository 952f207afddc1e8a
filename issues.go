package zenhubbridge

import "context"

// GetIssueData returns the service's data for a single issue: estimate,
// epic flag, +1s, and pipeline placement. Pipeline references the oldest
// workspace the issue is in; Pipelines covers every workspace.
func (c *Client) GetIssueData(ctx context.Context, repoID, issueNumber int) (*IssueData, error) {
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	var out IssueData
	if err := c.callModel(ctx, OpGetIssueData, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetIssueEvents returns an issue's history of estimate changes and pipeline
// transfers, most recent first.
func (c *Client) GetIssueEvents(ctx context.Context, repoID, issueNumber int) ([]IssueEvent, error) {
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	var out []IssueEvent
	if err := c.callModel(ctx, OpGetIssueEvents, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type moveIssueBody struct {
	PipelineID string   `json:"pipeline_id"`
	Position   Position `json:"position"`
}

// MoveIssue moves an issue to a pipeline of the given workspace's board.
func (c *Client) MoveIssue(ctx context.Context, workspaceID string, repoID, issueNumber int, pipelineID string, position Position) error {
	params := Params{
		"workspace_id": workspaceID,
		"repo_id":      repoID,
		"issue_number": issueNumber,
	}
	return c.callEmpty(ctx, OpMoveIssue, params, moveIssueBody{
		PipelineID: pipelineID,
		Position:   position,
	})
}

// MoveIssueInOldestWorkspace is the convenience variant of MoveIssue that
// targets the oldest workspace containing the repository.
func (c *Client) MoveIssueInOldestWorkspace(ctx context.Context, repoID, issueNumber int, pipelineID string, position Position) error {
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	return c.callEmpty(ctx, OpMoveIssueOldestWorkspace, params, moveIssueBody{
		PipelineID: pipelineID,
		Position:   position,
	})
}

// SetIssueEstimate sets an issue's estimate and returns the value the
// service stored.
func (c *Client) SetIssueEstimate(ctx context.Context, repoID, issueNumber, estimate int) (*Estimate, error) {
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	var out Estimate
	if err := c.callModel(ctx, OpSetIssueEstimate, params, Estimate{Estimate: estimate}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
