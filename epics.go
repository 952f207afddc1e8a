package zenhubbridge

import "context"

// GetEpics lists all epics of a repository. Issues that merely belong to an
// epic are not included; only parent epics are.
func (c *Client) GetEpics(ctx context.Context, repoID int) (*Epics, error) {
	params := Params{"repo_id": repoID}
	var out Epics
	if err := c.callModel(ctx, OpGetEpics, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEpicData returns the full data of one epic, identified by the issue
// number of its parent issue.
func (c *Client) GetEpicData(ctx context.Context, repoID, epicID int) (*EpicData, error) {
	params := Params{"repo_id": repoID, "epic_id": epicID}
	var out EpicData
	if err := c.callModel(ctx, OpGetEpicData, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertEpicToIssue converts an epic back into a regular issue.
func (c *Client) ConvertEpicToIssue(ctx context.Context, repoID, issueNumber int) error {
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	return c.callEmpty(ctx, OpConvertEpicToIssue, params, nil)
}

type convertToEpicBody struct {
	Issues []Issue `json:"issues"`
}

// ConvertIssueToEpic converts an issue into an epic, optionally attaching
// issues to it in the same call.
func (c *Client) ConvertIssueToEpic(ctx context.Context, repoID, issueNumber int, issues ...Issue) error {
	if issues == nil {
		issues = []Issue{}
	}
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	return c.callEmpty(ctx, OpConvertIssueToEpic, params, convertToEpicBody{Issues: issues})
}

type updateEpicIssuesBody struct {
	AddIssues    []Issue `json:"add_issues"`
	RemoveIssues []Issue `json:"remove_issues"`
}

// AddOrRemoveIssuesToEpic bulk-edits an epic's issue membership. The result
// reports which issues were actually added and removed.
func (c *Client) AddOrRemoveIssuesToEpic(ctx context.Context, repoID, issueNumber int, add, remove []Issue) (*EpicIssueChanges, error) {
	if add == nil {
		add = []Issue{}
	}
	if remove == nil {
		remove = []Issue{}
	}
	params := Params{"repo_id": repoID, "issue_number": issueNumber}
	var out EpicIssueChanges
	body := updateEpicIssuesBody{AddIssues: add, RemoveIssues: remove}
	if err := c.callModel(ctx, OpUpdateEpicIssues, params, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
