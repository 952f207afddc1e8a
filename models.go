// models.go
// ---------
// The schema registry: every response payload the service can return, as a
// typed record. Fields tagged `validate:"required"` are the contract's
// required fields; a response missing one of them fails materialization with
// a SchemaError instead of producing a partially populated record.
//
// Timestamp-valued fields use the Timestamp wrapper, so a materialized model
// never carries a raw wire-format time string.
package zenhubbridge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/opengovern/zenhub-bridge/internal/timeutil"
)

// Timestamp is a time.Time that marshals to and from the service's wire
// format (ISO-8601 with millisecond precision and a trailing Z).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := timeutil.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeutil.Format(t.Time))
}

// NewTimestamp wraps a time.Time for use in request payloads.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Position addresses a slot within a pipeline: the top, the bottom, or a
// 0-based index. The wire value is either a string or a number.
type Position struct {
	name  string
	index int
}

var (
	PositionTop    = Position{name: "top"}
	PositionBottom = Position{name: "bottom"}
)

// PositionAt returns the 0-based index position i.
func PositionAt(i int) Position {
	return Position{index: i}
}

func (p Position) MarshalJSON() ([]byte, error) {
	if p.name != "" {
		return json.Marshal(p.name)
	}
	return json.Marshal(p.index)
}

func (p *Position) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		p.index = 0
		return json.Unmarshal(data, &p.name)
	}
	p.name = ""
	return json.Unmarshal(data, &p.index)
}

func (p Position) String() string {
	if p.name != "" {
		return p.name
	}
	return strconv.Itoa(p.index)
}

// Issue identifies an issue by repository ID and issue number.
type Issue struct {
	RepoID      int `json:"repo_id" validate:"required"`
	IssueNumber int `json:"issue_number" validate:"required"`
}

// IssueEstimate is an estimate value attached to an issue or epic.
type IssueEstimate struct {
	Value int `json:"value"`
}

// Pipeline is a named stage of a workspace board.
type Pipeline struct {
	Name        string `json:"name" validate:"required"`
	PipelineID  string `json:"pipeline_id" validate:"required"`
	WorkspaceID string `json:"workspace_id" validate:"required"`
}

// PipelineRef names a pipeline without identifying it, as issue events do.
type PipelineRef struct {
	Name string `json:"name" validate:"required"`
}

// PlusOne records a +1 on an issue.
type PlusOne struct {
	CreatedAt Timestamp `json:"created_at" validate:"required"`
}

// IssueData is the service's data for a single issue. Pipeline references
// the oldest workspace the issue is in; Pipelines covers all of them.
type IssueData struct {
	Estimate  *IssueEstimate `json:"estimate,omitempty"`
	IsEpic    bool           `json:"is_epic"`
	PlusOnes  []PlusOne      `json:"plus_ones" validate:"dive"`
	Pipeline  *Pipeline      `json:"pipeline,omitempty"`
	Pipelines []Pipeline     `json:"pipelines,omitempty" validate:"dive"`
}

// Issue event types.
const (
	EventTypeEstimateIssue = "estimateIssue"
	EventTypeTransferIssue = "transferIssue"
)

// IssueEvent is a single entry of an issue's history: an estimate change or
// a transfer between pipelines. The from/to fields that apply depend on Type.
type IssueEvent struct {
	UserID       int            `json:"user_id" validate:"required"`
	Type         string         `json:"type" validate:"required,oneof=estimateIssue transferIssue"`
	CreatedAt    Timestamp      `json:"created_at" validate:"required"`
	FromEstimate *IssueEstimate `json:"from_estimate,omitempty"`
	ToEstimate   *IssueEstimate `json:"to_estimate,omitempty"`
	FromPipeline *PipelineRef   `json:"from_pipeline,omitempty"`
	ToPipeline   *PipelineRef   `json:"to_pipeline,omitempty"`
	WorkspaceID  string         `json:"workspace_id,omitempty"`
}

// Estimate is the response of setting an issue estimate.
type Estimate struct {
	Estimate int `json:"estimate"`
}

// EpicIssue is one epic in a repository's epic listing.
type EpicIssue struct {
	IssueNumber int    `json:"issue_number" validate:"required"`
	RepoID      int    `json:"repo_id" validate:"required"`
	IssueURL    string `json:"issue_url,omitempty"`
}

// Epics lists all epics of a repository.
type Epics struct {
	EpicIssues []EpicIssue `json:"epic_issues" validate:"dive"`
}

// EpicDataIssue is one issue belonging to an epic.
type EpicDataIssue struct {
	IssueNumber int            `json:"issue_number" validate:"required"`
	IsEpic      bool           `json:"is_epic"`
	RepoID      int            `json:"repo_id" validate:"required"`
	Estimate    *IssueEstimate `json:"estimate,omitempty"`
	Pipeline    *Pipeline      `json:"pipeline,omitempty"`
	Pipelines   []Pipeline     `json:"pipelines,omitempty" validate:"dive"`
}

// EpicData is the full data of a single epic.
type EpicData struct {
	TotalEpicEstimates *IssueEstimate  `json:"total_epic_estimates,omitempty"`
	Estimate           *IssueEstimate  `json:"estimate,omitempty"`
	Pipeline           *Pipeline       `json:"pipeline,omitempty"`
	Pipelines          []Pipeline      `json:"pipelines,omitempty" validate:"dive"`
	Issues             []EpicDataIssue `json:"issues" validate:"dive"`
}

// EpicIssueChanges reports which issues were added to or removed from an
// epic by a membership edit.
type EpicIssueChanges struct {
	AddedIssues   []Issue `json:"added_issues" validate:"dive"`
	RemovedIssues []Issue `json:"removed_issues" validate:"dive"`
}

// IssueChanges reports which issues were added to or removed from a release
// report by a membership edit.
type IssueChanges struct {
	Added   []Issue `json:"added" validate:"dive"`
	Removed []Issue `json:"removed" validate:"dive"`
}

// ReportState is the lifecycle state of a release report.
type ReportState string

const (
	ReportStateOpen   ReportState = "open"
	ReportStateClosed ReportState = "closed"
)

// ReleaseReport is a named collection of issues and repositories tracked
// toward a release.
type ReleaseReport struct {
	ReleaseID      string      `json:"release_id" validate:"required"`
	Title          string      `json:"title" validate:"required"`
	Description    string      `json:"description"`
	StartDate      Timestamp   `json:"start_date" validate:"required"`
	DesiredEndDate Timestamp   `json:"desired_end_date" validate:"required"`
	CreatedAt      Timestamp   `json:"created_at" validate:"required"`
	ClosedAt       *Timestamp  `json:"closed_at"`
	State          ReportState `json:"state" validate:"required,oneof=open closed"`
	Repositories   []int       `json:"repositories,omitempty"`
}

// Dependency is a blocking relation between two issues.
type Dependency struct {
	Blocking Issue `json:"blocking"`
	Blocked  Issue `json:"blocked"`
}

// Dependencies lists the dependencies of a repository.
type Dependencies struct {
	Dependencies []Dependency `json:"dependencies" validate:"dive"`
}

// MilestoneDate is the start date attached to a milestone.
type MilestoneDate struct {
	StartDate Timestamp `json:"start_date" validate:"required"`
}

// Workspace is a board grouping one or more repositories.
type Workspace struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description,omitempty"`
	ID           string `json:"id" validate:"required"`
	Repositories []int  `json:"repositories" validate:"required"`
}

// PipelineIssue is one issue as positioned on a board pipeline.
type PipelineIssue struct {
	IssueNumber int            `json:"issue_number" validate:"required"`
	Estimate    *IssueEstimate `json:"estimate,omitempty"`
	Position    Position       `json:"position"`
	IsEpic      bool           `json:"is_epic"`
}

// BoardPipeline is one pipeline of a board with its issues in order.
type BoardPipeline struct {
	ID     string          `json:"id" validate:"required"`
	Name   string          `json:"name" validate:"required"`
	Issues []PipelineIssue `json:"issues" validate:"dive"`
}

// Board is a workspace's kanban board for a single repository.
type Board struct {
	Pipelines []BoardPipeline `json:"pipelines" validate:"dive"`
}

// RateLimit is the service's current quota state. ResetAt is when the quota
// window rolls over.
type RateLimit struct {
	Limit     int       `json:"limit"`
	Used      int       `json:"used"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}
