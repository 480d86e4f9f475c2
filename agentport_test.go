package agentport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_BuildValidateExport(t *testing.T) {
	g, err := NewWorkflow("support-bot").
		AddAgentNode("triage", "agent-triage").
		AddAgentNode("answer", "agent-answer").
		Connect("triage", "answer").
		Build()
	require.NoError(t, err)

	res := Validate(context.Background(), g)
	require.True(t, res.Success)

	bundle, err := ExportAll(context.Background(), g, nil)
	require.NoError(t, err)
	require.NotNil(t, bundle.N8N)
	require.NotNil(t, bundle.LangGraph)
	require.NotNil(t, bundle.CrewAI)
	assert.Equal(t, "support-bot", bundle.N8N.Name)
}

func TestFacade_FromJSONRejectsInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"id":"wf","name":"bad","nodes":[],"connections":[]}`))
	require.Error(t, err)
}
