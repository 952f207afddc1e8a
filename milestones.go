package zenhubbridge

import (
	"context"
	"time"
)

// SetMilestoneStartDate sets a milestone's start date and returns the date
// the service stored.
func (c *Client) SetMilestoneStartDate(ctx context.Context, repoID, milestoneNumber int, startDate time.Time) (*MilestoneDate, error) {
	params := Params{"repo_id": repoID, "milestone_number": milestoneNumber}
	body := MilestoneDate{StartDate: NewTimestamp(startDate)}
	var out MilestoneDate
	if err := c.callModel(ctx, OpSetMilestoneStartDate, params, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMilestoneStartDate returns a milestone's current start date.
func (c *Client) GetMilestoneStartDate(ctx context.Context, repoID, milestoneNumber int) (*MilestoneDate, error) {
	params := Params{"repo_id": repoID, "milestone_number": milestoneNumber}
	var out MilestoneDate
	if err := c.callModel(ctx, OpGetMilestoneStartDate, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
