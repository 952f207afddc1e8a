package zenhubbridge

import "context"

// GetReleaseReportIssues lists every issue tracked by a release report.
func (c *Client) GetReleaseReportIssues(ctx context.Context, releaseID string) ([]Issue, error) {
	params := Params{"release_id": releaseID}
	var out []Issue
	if err := c.callModel(ctx, OpGetReleaseReportIssues, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type updateReportIssuesBody struct {
	AddIssues    []Issue `json:"add_issues"`
	RemoveIssues []Issue `json:"remove_issues"`
}

// AddOrRemoveIssuesFromReleaseReport edits a release report's issue
// membership. Adding and removing happen in the same request; the result
// reports what actually changed.
func (c *Client) AddOrRemoveIssuesFromReleaseReport(ctx context.Context, releaseID string, add, remove []Issue) (*IssueChanges, error) {
	if add == nil {
		add = []Issue{}
	}
	if remove == nil {
		remove = []Issue{}
	}
	params := Params{"release_id": releaseID}
	body := updateReportIssuesBody{AddIssues: add, RemoveIssues: remove}
	var out IssueChanges
	if err := c.callModel(ctx, OpUpdateReleaseReportIssues, params, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
