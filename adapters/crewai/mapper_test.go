package crewai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

func buildGraph(t *testing.T, b *workflow.GraphBuilder) *workflow.Graph {
	t.Helper()
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func chainOfThree(t *testing.T) *workflow.Graph {
	return buildGraph(t, workflow.NewGraphBuilder("editorial").
		AddAgentNode("research", "agent-research").
		AddAgentNode("write", "agent-write").
		AddAgentNode("review", "agent-review").
		Connect("research", "write").
		Connect("write", "review"))
}

func TestMapWorkflow_SequentialChain(t *testing.T) {
	t.Parallel()

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), chainOfThree(t))
	require.NoError(t, err)

	assert.Equal(t, ProcessSequential, crew.Process)
	require.Len(t, crew.Agents, 3)
	require.Len(t, crew.Tasks, 3, "exactly one task per agent")
}

func TestMapWorkflow_BranchingSelectsHierarchical(t *testing.T) {
	t.Parallel()

	// Same chain plus one extra fan-out edge from the first node.
	g := buildGraph(t, workflow.NewGraphBuilder("editorial").
		AddAgentNode("research", "agent-research").
		AddAgentNode("write", "agent-write").
		AddAgentNode("review", "agent-review").
		AddAgentNode("archive", "agent-archive").
		Connect("research", "write").
		Connect("write", "review").
		Connect("research", "archive"))

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, ProcessHierarchical, crew.Process)
}

func TestMapWorkflow_ConvergenceSelectsHierarchical(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, workflow.NewGraphBuilder("merge").
		AddAgentNode("a", "agent-a").
		AddAgentNode("b", "agent-b").
		AddAgentNode("sink", "agent-sink").
		Connect("a", "sink").
		Connect("b", "sink"))

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, ProcessHierarchical, crew.Process)
}

func TestMapWorkflow_ProcessOverride(t *testing.T) {
	t.Parallel()

	crew, err := NewMapper(&Options{Process: ProcessHierarchical}).
		MapWorkflow(context.Background(), chainOfThree(t))
	require.NoError(t, err)
	assert.Equal(t, ProcessHierarchical, crew.Process)
}

func TestMapWorkflow_NonAgentNodesSkipped(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, workflow.NewGraphBuilder("mixed").
		AddNode("start", workflow.NodeKindTrigger).Done().
		AddAgentNode("work", "agent-w").
		AddNode("gate", workflow.NodeKindCondition).Done().
		AddAgentNode("finish", "agent-f").
		Connect("start", "work").
		Connect("work", "gate").
		Connect("gate", "finish"))

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), g)
	require.NoError(t, err)

	require.Len(t, crew.Agents, 2)
	require.Len(t, crew.Tasks, 2)

	// The trigger precedes "work" and the condition precedes "finish";
	// neither is an agent, so neither propagates as context.
	assert.Empty(t, crew.Tasks[0].Context)
	assert.Empty(t, crew.Tasks[1].Context)
}

func TestMapWorkflow_ContextFromAgentPredecessorsOnly(t *testing.T) {
	t.Parallel()

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), chainOfThree(t))
	require.NoError(t, err)

	assert.Empty(t, crew.Tasks[0].Context)
	assert.Equal(t, []string{"research"}, crew.Tasks[1].Context)
	assert.Equal(t, []string{"write"}, crew.Tasks[2].Context)
}

func TestMapWorkflow_GoalAndBackstoryDerivation(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, workflow.NewGraphBuilder("derive").
		AddNode("full", workflow.NodeKindAgent).WithAgent(&types.AgentSpec{
			ID: "a1", Name: "Researcher", Provider: types.ProviderOpenAI, Model: "gpt-4o",
			Description:  "Finds reliable sources.",
			SystemPrompt: "You research rigorously.",
		}).Done().
		AddNode("bare", workflow.NodeKindAgent).WithAgentID("agent-bare").WithName("Archivist").Done().
		Connect("full", "bare"))

	crew, err := NewMapper(nil).MapWorkflow(context.Background(), g)
	require.NoError(t, err)

	full := crew.Agents[0]
	assert.Equal(t, "Researcher", full.Role)
	assert.Equal(t, "You research rigorously.", full.Goal, "system prompt wins for the goal")
	assert.Equal(t, "Finds reliable sources. You research rigorously.", full.Backstory)

	bare := crew.Agents[1]
	assert.Equal(t, "Archivist", bare.Role)
	assert.Equal(t, "agent-bare", bare.AgentRef)
	assert.Empty(t, bare.Model, "late-bound reference carries no model detail")
	assert.Contains(t, bare.Goal, "Archivist", "generated goal must mention the role")
	assert.Contains(t, bare.Backstory, "Archivist")

	// Task description mirrors the goal derivation; expectedOutput
	// references the role.
	assert.Equal(t, full.Goal, crew.Tasks[0].Description)
	assert.Contains(t, crew.Tasks[0].ExpectedOutput, "Researcher")
}

func TestMapAgent_Standalone(t *testing.T) {
	t.Parallel()

	agent, err := NewMapper(nil).MapAgent(context.Background(), &types.AgentSpec{
		ID: "a", Name: "Planner", Provider: types.ProviderAnthropic, Model: "claude-sonnet-4",
		Tools: []types.ToolSpec{{Name: "calendar"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Planner", agent.Role)
	assert.Equal(t, []string{"calendar"}, agent.Tools)
	assert.Contains(t, agent.Goal, "Planner")

	_, err = NewMapper(nil).MapAgent(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrTranslation, types.GetErrorCode(err))
}
