package zenhubbridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allParams covers every placeholder any catalogued path template uses.
var allParams = Params{
	"repo_id":          1234567,
	"issue_number":     45,
	"workspace_id":     "5d0a7a9741fd098f6b7f58ac",
	"epic_id":          3161,
	"milestone_number": 7,
	"release_id":       "59dff4f508399a35a276a1ea",
}

func TestResolveBindsEveryPlaceholder(t *testing.T) {
	ops := map[Operation]bool{}
	for key := range catalog {
		ops[key.op] = true
	}
	require.NotEmpty(t, ops)

	for op := range ops {
		for _, version := range []Enterprise{Enterprise2, Enterprise3} {
			_, path, err := resolveEndpoint(op, version, allParams)
			require.NoError(t, err, "operation %s (enterprise %d)", op, version)
			for _, seg := range strings.Split(path, "/") {
				assert.False(t, strings.HasPrefix(seg, ":"),
					"operation %s left placeholder %q in %s", op, seg, path)
			}
		}
	}
}

func TestResolveUnknownOperation(t *testing.T) {
	_, _, err := resolveEndpoint("issues.destroy", Enterprise2, allParams)
	require.ErrorIs(t, err, ErrUnknownOperation)
}

func TestResolveMissingParameter(t *testing.T) {
	_, _, err := resolveEndpoint(OpGetIssueData, Enterprise2, Params{"repo_id": 123})

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, OpGetIssueData, missing.Operation)
	assert.Equal(t, "issue_number", missing.Parameter)
}

func TestResolveNilParameterCountsAsMissing(t *testing.T) {
	_, _, err := resolveEndpoint(OpGetEpics, Enterprise2, Params{"repo_id": nil})

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "repo_id", missing.Parameter)
}

func TestResolveEscapesPathValues(t *testing.T) {
	_, path, err := resolveEndpoint(OpGetReleaseReport, Enterprise2, Params{"release_id": "abc/def ghi"})
	require.NoError(t, err)
	assert.Equal(t, "/p1/reports/release/abc%2Fdef%20ghi", path)
}

func TestResolveRejectsUnsupportedParameterType(t *testing.T) {
	_, _, err := resolveEndpoint(OpGetEpics, Enterprise2, Params{"repo_id": 3.14})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported path parameter type")
}

func TestResolveMoveIssuePaths(t *testing.T) {
	ep, path, err := resolveEndpoint(OpMoveIssue, Enterprise2, allParams)
	require.NoError(t, err)
	assert.Equal(t, "PATCH", ep.method)
	assert.Equal(t, "/p2/workspaces/5d0a7a9741fd098f6b7f58ac/repositories/1234567/issues/45/moves", path)

	ep, path, err = resolveEndpoint(OpMoveIssueOldestWorkspace, Enterprise2, allParams)
	require.NoError(t, err)
	assert.Equal(t, "PATCH", ep.method)
	assert.Equal(t, "/p1/repositories/1234567/issues/45/moves", path)
}
