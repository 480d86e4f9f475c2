package workflow

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/agentport/types"
)

const sampleYAML = `
id: wf-research
name: research-pipeline
nodes:
  - id: start
    kind: trigger
  - id: search
    kind: agent
    agent_id: agent-search
  - id: summarize
    kind: agent
    agent:
      id: agent-summarize
      name: Summarizer
      provider: openai
      model: gpt-4o-mini
connections:
  - id: c0
    source_id: start
    target_id: search
  - id: c1
    source_id: search
    target_id: summarize
variables:
  - name: query
    type: string
    required: true
`

func TestFromYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	g, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "wf-research", g.ID)
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, "agent-search", g.Nodes[1].AgentID)
	require.NotNil(t, g.Nodes[2].Agent)
	assert.Equal(t, types.ProviderOpenAI, g.Nodes[2].Agent.Provider)

	out, err := g.ToJSON()
	require.NoError(t, err)
	back, err := FromJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, g.ID, back.ID)
	assert.Equal(t, len(g.Connections), len(back.Connections))
}

func TestFromJSON_RejectsInvalidDefinition(t *testing.T) {
	t.Parallel()

	_, err := FromJSON([]byte(`{"id":"x","name":"x","nodes":[]}`))
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidGraph, types.GetErrorCode(err))

	_, err = FromJSON([]byte(`{not json`))
	require.Error(t, err)
	assert.Equal(t, types.ErrSerialization, types.GetErrorCode(err))
}

func TestLoadSaveFile(t *testing.T) {
	t.Parallel()

	g, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "wf.yaml")
	jsonPath := filepath.Join(dir, "wf.json")

	require.NoError(t, g.SaveFile(yamlPath))
	require.NoError(t, g.SaveFile(jsonPath))

	fromYAML, err := LoadFile(yamlPath)
	require.NoError(t, err)
	fromJSON, err := LoadFile(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, g.ID, fromYAML.ID)
	assert.Equal(t, g.ID, fromJSON.ID)
}
