// catalog.go
// ----------
// The endpoint catalog: one immutable descriptor per operation, looked up by
// the composite key (operation, enterprise version). A descriptor carries
// the HTTP verb, the path template with :name placeholders, and the declared
// response shape.
//
// The catalog is built once at init and never mutated. Resolution binds
// caller-supplied arguments into a concrete path, URL-escaping each value,
// and fails locally (ErrUnknownOperation, MissingParameterError) before any
// network I/O happens.
package zenhubbridge

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Operation names a remote capability in the catalog.
type Operation string

const (
	OpGetIssueData             Operation = "issues.get_data"
	OpGetIssueEvents           Operation = "issues.get_events"
	OpMoveIssue                Operation = "issues.move"
	OpMoveIssueOldestWorkspace Operation = "issues.move_oldest_workspace"
	OpSetIssueEstimate         Operation = "issues.set_estimate"

	OpGetEpics           Operation = "epics.get"
	OpGetEpicData        Operation = "epics.get_data"
	OpConvertEpicToIssue Operation = "epics.convert_to_issue"
	OpConvertIssueToEpic Operation = "epics.convert_from_issue"
	OpUpdateEpicIssues   Operation = "epics.update_issues"

	OpGetWorkspaces            Operation = "workspaces.get"
	OpGetRepositoryBoard       Operation = "workspaces.get_board"
	OpGetOldestRepositoryBoard Operation = "workspaces.get_oldest_board"
	OpSetMilestoneStartDate    Operation = "milestones.set_start_date"
	OpGetMilestoneStartDate    Operation = "milestones.get_start_date"

	OpGetDependencies  Operation = "dependencies.get"
	OpCreateDependency Operation = "dependencies.create"
	OpRemoveDependency Operation = "dependencies.remove"

	OpCreateReleaseReport         Operation = "release_reports.create"
	OpGetReleaseReport            Operation = "release_reports.get"
	OpGetReleaseReports           Operation = "release_reports.list"
	OpEditReleaseReport           Operation = "release_reports.edit"
	OpAddRepoToReleaseReport      Operation = "release_reports.add_repo"
	OpRemoveRepoFromReleaseReport Operation = "release_reports.remove_repo"
	OpGetReleaseReportIssues      Operation = "release_reports.get_issues"
	OpUpdateReleaseReportIssues   Operation = "release_reports.update_issues"

	OpGetRateLimit Operation = "rate.get"
)

// shape describes a declared response shape for required-field checking in
// raw mode and error reporting in both modes.
type shape struct {
	name string
	// isArray marks shapes whose top-level document is a JSON array.
	isArray bool
	// required lists top-level keys that must be present on object shapes.
	required []string
	// itemRequired lists keys that must be present on each array element.
	itemRequired []string
}

// endpoint is one immutable entry of the catalog.
type endpoint struct {
	method string
	path   string // template with :name placeholders
	shape  shape
}

// Response shapes. Presence is checked here; typed-field validation lives in
// the models' validate tags.
var (
	shapeEmpty         = shape{name: "Empty"}
	shapeIssueData     = shape{name: "IssueData", required: []string{"is_epic", "plus_ones"}}
	shapeIssueEvents   = shape{name: "IssueEvents", isArray: true, itemRequired: []string{"user_id", "type", "created_at"}}
	shapeEstimate      = shape{name: "Estimate", required: []string{"estimate"}}
	shapeEpics         = shape{name: "Epics", required: []string{"epic_issues"}}
	shapeEpicData      = shape{name: "EpicData", required: []string{"issues"}}
	shapeEpicChanges   = shape{name: "EpicIssueChanges", required: []string{"added_issues", "removed_issues"}}
	shapeWorkspaces    = shape{name: "Workspaces", isArray: true, itemRequired: []string{"name", "id", "repositories"}}
	shapeBoard         = shape{name: "Board", required: []string{"pipelines"}}
	shapeMilestoneDate = shape{name: "MilestoneDate", required: []string{"start_date"}}
	shapeDependencies  = shape{name: "Dependencies", required: []string{"dependencies"}}
	shapeDependency    = shape{name: "Dependency", required: []string{"blocking", "blocked"}}
	shapeReleaseReport = shape{name: "ReleaseReport", required: []string{
		"release_id", "title", "description", "start_date", "desired_end_date", "created_at", "state",
	}}
	shapeReleaseReports = shape{name: "ReleaseReports", isArray: true, itemRequired: []string{
		"release_id", "title", "description", "start_date", "desired_end_date", "created_at", "state",
	}}
	shapeReportIssues = shape{name: "ReleaseReportIssues", isArray: true, itemRequired: []string{"repo_id", "issue_number"}}
	shapeIssueChanges = shape{name: "IssueChanges", required: []string{"added", "removed"}}
	shapeRateLimit    = shape{name: "RateLimit"}
)

type catalogKey struct {
	op         Operation
	enterprise Enterprise
}

var catalog = buildCatalog()

func buildCatalog() map[catalogKey]endpoint {
	table := make(map[catalogKey]endpoint)

	// The two enterprise versions share verb, template, and shape for every
	// current operation; only the base path differs, and that is applied at
	// client construction. Registering per version keeps the composite key
	// so a future version can override single entries.
	add := func(op Operation, ep endpoint) {
		for _, v := range []Enterprise{Enterprise2, Enterprise3} {
			table[catalogKey{op: op, enterprise: v}] = ep
		}
	}

	add(OpGetIssueData, endpoint{http.MethodGet, "/p1/repositories/:repo_id/issues/:issue_number", shapeIssueData})
	add(OpGetIssueEvents, endpoint{http.MethodGet, "/p1/repositories/:repo_id/issues/:issue_number/events", shapeIssueEvents})
	add(OpMoveIssue, endpoint{http.MethodPatch, "/p2/workspaces/:workspace_id/repositories/:repo_id/issues/:issue_number/moves", shapeEmpty})
	add(OpMoveIssueOldestWorkspace, endpoint{http.MethodPatch, "/p1/repositories/:repo_id/issues/:issue_number/moves", shapeEmpty})
	add(OpSetIssueEstimate, endpoint{http.MethodPut, "/p1/repositories/:repo_id/issues/:issue_number/estimate", shapeEstimate})

	add(OpGetEpics, endpoint{http.MethodGet, "/p1/repositories/:repo_id/epics", shapeEpics})
	add(OpGetEpicData, endpoint{http.MethodGet, "/p1/repositories/:repo_id/epics/:epic_id", shapeEpicData})
	add(OpConvertEpicToIssue, endpoint{http.MethodPost, "/p1/repositories/:repo_id/epics/:issue_number/convert_to_issue", shapeEmpty})
	add(OpConvertIssueToEpic, endpoint{http.MethodPost, "/p1/repositories/:repo_id/issues/:issue_number/convert_to_epic", shapeEmpty})
	add(OpUpdateEpicIssues, endpoint{http.MethodPost, "/p1/repositories/:repo_id/epics/:issue_number/update_issues", shapeEpicChanges})

	add(OpGetWorkspaces, endpoint{http.MethodGet, "/p2/repositories/:repo_id/workspaces", shapeWorkspaces})
	add(OpGetRepositoryBoard, endpoint{http.MethodGet, "/p2/workspaces/:workspace_id/repositories/:repo_id/board", shapeBoard})
	add(OpGetOldestRepositoryBoard, endpoint{http.MethodGet, "/p1/repositories/:repo_id/board", shapeBoard})
	add(OpSetMilestoneStartDate, endpoint{http.MethodPost, "/p1/repositories/:repo_id/milestones/:milestone_number/start_date", shapeMilestoneDate})
	add(OpGetMilestoneStartDate, endpoint{http.MethodGet, "/p1/repositories/:repo_id/milestones/:milestone_number/start_date", shapeMilestoneDate})

	add(OpGetDependencies, endpoint{http.MethodGet, "/p1/repositories/:repo_id/dependencies", shapeDependencies})
	add(OpCreateDependency, endpoint{http.MethodPost, "/p1/dependencies", shapeDependency})
	add(OpRemoveDependency, endpoint{http.MethodDelete, "/p1/dependencies", shapeEmpty})

	add(OpCreateReleaseReport, endpoint{http.MethodPost, "/p1/repositories/:repo_id/reports/release", shapeReleaseReport})
	add(OpGetReleaseReport, endpoint{http.MethodGet, "/p1/reports/release/:release_id", shapeReleaseReport})
	add(OpGetReleaseReports, endpoint{http.MethodGet, "/p1/repositories/:repo_id/reports/releases", shapeReleaseReports})
	add(OpEditReleaseReport, endpoint{http.MethodPatch, "/p1/reports/release/:release_id", shapeReleaseReport})
	add(OpAddRepoToReleaseReport, endpoint{http.MethodPost, "/p1/reports/release/:release_id/repository/:repo_id", shapeEmpty})
	add(OpRemoveRepoFromReleaseReport, endpoint{http.MethodDelete, "/p1/reports/release/:release_id/repository/:repo_id", shapeEmpty})
	add(OpGetReleaseReportIssues, endpoint{http.MethodGet, "/p1/reports/release/:release_id/issues", shapeReportIssues})
	add(OpUpdateReleaseReportIssues, endpoint{http.MethodPatch, "/p1/reports/release/:release_id/issues", shapeIssueChanges})

	add(OpGetRateLimit, endpoint{http.MethodHead, "/p2/repositories/:repo_id/workspaces", shapeRateLimit})

	return table
}

// Params are the caller-supplied arguments bound into a path template.
// Values may be strings or integers.
type Params map[string]any

// resolveEndpoint looks up op for the given enterprise version and binds
// params into its path template.
func resolveEndpoint(op Operation, enterprise Enterprise, params Params) (endpoint, string, error) {
	ep, ok := catalog[catalogKey{op: op, enterprise: enterprise}]
	if !ok {
		return endpoint{}, "", fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	path, err := bindPath(op, ep.path, params)
	if err != nil {
		return endpoint{}, "", err
	}
	return ep, path, nil
}

// bindPath substitutes every :name placeholder in template with the
// URL-escaped value from params. Every placeholder is required.
func bindPath(op Operation, template string, params Params) (string, error) {
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		value, ok := params[name]
		if !ok || value == nil {
			return "", &MissingParameterError{Operation: op, Parameter: name}
		}
		s, err := paramString(value)
		if err != nil {
			return "", fmt.Errorf("operation %s: parameter %q: %w", op, name, err)
		}
		if s == "" {
			return "", &MissingParameterError{Operation: op, Parameter: name}
		}
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/"), nil
}

func paramString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", fmt.Errorf("unsupported path parameter type %T", v)
	}
}
