package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_JSONShape(t *testing.T) {
	t.Parallel()

	ok := OK(&AgentSpec{ID: "a1", Name: "researcher"})
	data, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"success":true`)
	assert.NotContains(t, string(data), `"error"`)

	fail := Fail[*AgentSpec]("agent validation failed", []Issue{
		IssueAt("provider is required", "provider"),
		IssueAt("name must not be empty", "tools", "0", "name"),
	})
	data, err = json.Marshal(fail)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"success":false`)
	assert.Contains(t, string(data), `"path":["tools","0","name"]`)
}

func TestIssue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nodes.2.id: duplicate node id", IssueAt("duplicate node id", "nodes", "2", "id").String())
	assert.Equal(t, "graph is empty", Issue{Message: "graph is empty"}.String())
}

func TestResultError_Error(t *testing.T) {
	t.Parallel()

	e := &ResultError{Message: "workflow validation failed", Issues: []Issue{{Message: "x"}}}
	assert.Equal(t, "workflow validation failed (1 issues)", e.Error())
	assert.Equal(t, "nope", (&ResultError{Message: "nope"}).Error())
}
