package zenhubbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/opengovern/zenhub-bridge/internal/timeutil"
)

type createReleaseReportBody struct {
	Title          string    `json:"title"`
	StartDate      Timestamp `json:"start_date"`
	DesiredEndDate Timestamp `json:"desired_end_date"`
	Description    string    `json:"description,omitempty"`
	Repositories   []int     `json:"repositories,omitempty"`
}

type editReleaseReportBody struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	StartDate      Timestamp   `json:"start_date"`
	DesiredEndDate Timestamp   `json:"desired_end_date"`
	State          ReportState `json:"state,omitempty"`
}

// CreateReleaseReport creates a release report rooted at repoID, optionally
// spanning additional repositories. description may be empty.
func (c *Client) CreateReleaseReport(ctx context.Context, repoID int, title string, startDate, desiredEndDate time.Time, description string, repositories []int) (*ReleaseReport, error) {
	if err := checkDates(startDate, desiredEndDate); err != nil {
		return nil, err
	}
	params := Params{"repo_id": repoID}
	body := createReleaseReportBody{
		Title:          title,
		StartDate:      NewTimestamp(startDate),
		DesiredEndDate: NewTimestamp(desiredEndDate),
		Description:    description,
		Repositories:   repositories,
	}
	var out ReleaseReport
	if err := c.callModel(ctx, OpCreateReleaseReport, params, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReleaseReport fetches one release report by its identifier.
func (c *Client) GetReleaseReport(ctx context.Context, releaseID string) (*ReleaseReport, error) {
	params := Params{"release_id": releaseID}
	var out ReleaseReport
	if err := c.callModel(ctx, OpGetReleaseReport, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReleaseReports lists the release reports of a repository.
func (c *Client) GetReleaseReports(ctx context.Context, repoID int) ([]ReleaseReport, error) {
	params := Params{"repo_id": repoID}
	var out []ReleaseReport
	if err := c.callModel(ctx, OpGetReleaseReports, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EditReleaseReport updates a release report's title, dates, description,
// and optionally its state. An empty state leaves the state unchanged.
func (c *Client) EditReleaseReport(ctx context.Context, releaseID, title string, startDate, desiredEndDate time.Time, description string, state ReportState) (*ReleaseReport, error) {
	if err := checkDates(startDate, desiredEndDate); err != nil {
		return nil, err
	}
	if state != "" && state != ReportStateOpen && state != ReportStateClosed {
		return nil, &InvalidReportStateError{State: state}
	}
	params := Params{"release_id": releaseID}
	body := editReleaseReportBody{
		Title:          title,
		Description:    description,
		StartDate:      NewTimestamp(startDate),
		DesiredEndDate: NewTimestamp(desiredEndDate),
		State:          state,
	}
	var out ReleaseReport
	if err := c.callModel(ctx, OpEditReleaseReport, params, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddRepoToReleaseReport adds a repository to a release report.
func (c *Client) AddRepoToReleaseReport(ctx context.Context, releaseID string, repoID int) error {
	params := Params{"release_id": releaseID, "repo_id": repoID}
	return c.callEmpty(ctx, OpAddRepoToReleaseReport, params, nil)
}

// RemoveRepoFromReleaseReport removes a repository from a release report.
// A release report always keeps at least one repository; the service rejects
// removing the last one.
func (c *Client) RemoveRepoFromReleaseReport(ctx context.Context, releaseID string, repoID int) error {
	params := Params{"release_id": releaseID, "repo_id": repoID}
	return c.callEmpty(ctx, OpRemoveRepoFromReleaseReport, params, nil)
}

// checkDates rejects a start date after the desired end date before any
// request is built.
func checkDates(start, desiredEnd time.Time) error {
	if start.After(desiredEnd) {
		return fmt.Errorf("start date %s must be before desired end date %s",
			timeutil.Format(start), timeutil.Format(desiredEnd))
	}
	return nil
}
