package zenhubbridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovern/zenhub-bridge/mock"
)

const releaseReportJSON = `{
	"release_id": "59dff4f508399a35a276a1ea",
	"title": "Great title",
	"description": "Amazing description",
	"start_date": "2007-01-01T00:00:00.000Z",
	"desired_end_date": "2007-06-01T00:00:00.000Z",
	"created_at": "2017-10-12T23:04:21.795Z",
	"closed_at": null,
	"state": "open",
	"repositories": [103707262]
}`

func TestCreateReleaseReport(t *testing.T) {
	tr := &mock.Transport{Body: []byte(releaseReportJSON)}
	c := newTestClient(tr)

	start := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC)
	report, err := c.CreateReleaseReport(context.Background(), 103707262,
		"Great title", start, end, "Amazing description", []int{103707262})
	require.NoError(t, err)
	assert.Equal(t, "59dff4f508399a35a276a1ea", report.ReleaseID)
	assert.Equal(t, ReportStateOpen, report.State)
	assert.Nil(t, report.ClosedAt)
	assert.True(t, report.StartDate.Equal(start))

	req := tr.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/p1/repositories/103707262/reports/release", req.URL.Path)
	assert.JSONEq(t, `{
		"title": "Great title",
		"start_date": "2007-01-01T00:00:00.000Z",
		"desired_end_date": "2007-06-01T00:00:00.000Z",
		"description": "Amazing description",
		"repositories": [103707262]
	}`, string(tr.LastBody()))
}

func TestCreateReleaseReportOmitsEmptyOptionals(t *testing.T) {
	tr := &mock.Transport{Body: []byte(releaseReportJSON)}
	c := newTestClient(tr)

	start := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.CreateReleaseReport(context.Background(), 103707262, "Great title", start, end, "", nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Great title",
		"start_date": "2007-01-01T00:00:00.000Z",
		"desired_end_date": "2007-06-01T00:00:00.000Z"
	}`, string(tr.LastBody()))
}

func TestCreateReleaseReportRejectsInvertedDates(t *testing.T) {
	tr := &mock.Transport{}
	c := newTestClient(tr)

	start := time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.CreateReleaseReport(context.Background(), 103707262, "t", start, end, "", nil)
	require.Error(t, err)
	assert.Equal(t, 0, tr.Calls())
}

func TestGetReleaseReport(t *testing.T) {
	tr := &mock.Transport{Body: []byte(releaseReportJSON)}
	c := newTestClient(tr)

	report, err := c.GetReleaseReport(context.Background(), "59dff4f508399a35a276a1ea")
	require.NoError(t, err)
	assert.Equal(t, "Great title", report.Title)
	assert.Equal(t, []int{103707262}, report.Repositories)
	assert.Equal(t, "/p1/reports/release/59dff4f508399a35a276a1ea", tr.LastRequest().URL.Path)
}

func TestGetReleaseReports(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`[
		{
			"release_id": "59cbf2fde010f7a5207406e8",
			"title": "Great title for release 1",
			"description": "Great description for release",
			"start_date": "2000-10-10T00:00:00.000Z",
			"desired_end_date": "2010-10-10T00:00:00.000Z",
			"created_at": "2017-09-27T18:50:37.418Z",
			"closed_at": null,
			"state": "open"
		},
		{
			"release_id": "59cbf2fde010f7a5207406e9",
			"title": "Great title for release 2",
			"description": "Great description for release",
			"start_date": "2000-10-10T00:00:00.000Z",
			"desired_end_date": "2010-10-10T00:00:00.000Z",
			"created_at": "2017-09-27T18:50:37.418Z",
			"closed_at": "2018-01-27T18:50:37.418Z",
			"state": "closed"
		}
	]`)}
	c := newTestClient(tr)

	reports, err := c.GetReleaseReports(context.Background(), 103707262)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, ReportStateClosed, reports[1].State)
	require.NotNil(t, reports[1].ClosedAt)
	assert.Equal(t, "/p1/repositories/103707262/reports/releases", tr.LastRequest().URL.Path)
}

func TestEditReleaseReport(t *testing.T) {
	tr := &mock.Transport{Body: []byte(releaseReportJSON)}
	c := newTestClient(tr)

	start := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.EditReleaseReport(context.Background(), "59dff4f508399a35a276a1ea",
		"Amazing title", start, end, "", ReportStateClosed)
	require.NoError(t, err)

	req := tr.LastRequest()
	assert.Equal(t, "PATCH", req.Method)
	assert.Equal(t, "/p1/reports/release/59dff4f508399a35a276a1ea", req.URL.Path)
	assert.JSONEq(t, `{
		"title": "Amazing title",
		"description": "",
		"start_date": "2007-01-01T00:00:00.000Z",
		"desired_end_date": "2007-06-01T00:00:00.000Z",
		"state": "closed"
	}`, string(tr.LastBody()))
}

func TestEditReleaseReportRejectsBogusState(t *testing.T) {
	tr := &mock.Transport{}
	c := newTestClient(tr)

	start := time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.EditReleaseReport(context.Background(), "rid", "t", start, end, "", "paused")

	var stateErr *InvalidReportStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, ReportState("paused"), stateErr.State)
	assert.Equal(t, 0, tr.Calls())
}

func TestAddAndRemoveRepoFromReleaseReport(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`{}`)}
	c := newTestClient(tr)

	require.NoError(t, c.AddRepoToReleaseReport(context.Background(), "59dff4f508399a35a276a1ea", 103707262))
	req := tr.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/p1/reports/release/59dff4f508399a35a276a1ea/repository/103707262", req.URL.Path)

	require.NoError(t, c.RemoveRepoFromReleaseReport(context.Background(), "59dff4f508399a35a276a1ea", 103707262))
	req = tr.LastRequest()
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/p1/reports/release/59dff4f508399a35a276a1ea/repository/103707262", req.URL.Path)
}

func TestGetReleaseReportIssues(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`[
		{"repo_id": 103707262, "issue_number": 2},
		{"repo_id": 103707262, "issue_number": 3}
	]`)}
	c := newTestClient(tr)

	issues, err := c.GetReleaseReportIssues(context.Background(), "59dff4f508399a35a276a1ea")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, 3, issues[1].IssueNumber)
	assert.Equal(t, "/p1/reports/release/59dff4f508399a35a276a1ea/issues", tr.LastRequest().URL.Path)
}

func TestAddOrRemoveIssuesFromReleaseReport(t *testing.T) {
	tr := &mock.Transport{Body: []byte(`{
		"added": [{"repo_id": 103707262, "issue_number": 3}],
		"removed": []
	}`)}
	c := newTestClient(tr)

	changes, err := c.AddOrRemoveIssuesFromReleaseReport(context.Background(), "59dff4f508399a35a276a1ea",
		[]Issue{{RepoID: 103707262, IssueNumber: 3}}, nil)
	require.NoError(t, err)
	assert.Len(t, changes.Added, 1)
	assert.Empty(t, changes.Removed)

	req := tr.LastRequest()
	assert.Equal(t, "PATCH", req.Method)
	assert.JSONEq(t, `{
		"add_issues": [{"repo_id": 103707262, "issue_number": 3}],
		"remove_issues": []
	}`, string(tr.LastBody()))
}
