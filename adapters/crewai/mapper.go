package crewai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/agentport/internal/telemetry"
	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

// Options is the CrewAI mapping options record. The zero value means:
// process type inferred from graph shape, verbose off.
type Options struct {
	// Process overrides the inferred process type. "" means infer.
	Process Process
	// Verbose sets the crew's verbose flag. Default false.
	Verbose bool
}

// Mapper translates validated workflow graphs and single agent specs into
// CrewAI crew documents. Validity is assumed, not re-checked.
type Mapper struct {
	opts   Options
	logger *zap.Logger
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) MapperOption {
	return func(m *Mapper) {
		m.logger = logger.With(zap.String("component", "crewai_mapper"))
	}
}

// NewMapper creates a Mapper. A nil options pointer selects all defaults.
func NewMapper(opts *Options, mopts ...MapperOption) *Mapper {
	m := &Mapper{logger: zap.NewNop()}
	if opts != nil {
		m.opts = *opts
	}
	for _, o := range mopts {
		o(m)
	}
	return m
}

// MapAgent translates one agent spec into a standalone crew agent for
// callers who have no graph.
func (m *Mapper) MapAgent(ctx context.Context, spec *types.AgentSpec) (*Agent, error) {
	_, span := telemetry.Start(ctx, "crewai.MapAgent", telemetry.Target("crewai"))
	defer span.End()

	if spec == nil {
		err := types.NewError(types.ErrTranslation, "agent spec is nil").WithTarget("crewai")
		telemetry.RecordError(span, err)
		return nil, err
	}

	agent := crewAgentFromSpec(spec, spec.Name)
	return &agent, nil
}

// MapWorkflow translates one validated workflow graph into a crew. Only
// agent-kind nodes contribute crew members and tasks; structural nodes are
// silently skipped.
func (m *Mapper) MapWorkflow(ctx context.Context, g *workflow.Graph) (*Crew, error) {
	_, span := telemetry.Start(ctx, "crewai.MapWorkflow", telemetry.Target("crewai"))
	defer span.End()

	if g == nil {
		err := types.NewError(types.ErrTranslation, "workflow graph is nil").WithTarget("crewai")
		telemetry.RecordError(span, err)
		return nil, err
	}

	crew := &Crew{
		Name:    g.Name,
		Verbose: m.opts.Verbose,
		Process: m.opts.Process,
	}
	if crew.Process == "" {
		crew.Process = inferProcess(g)
	}

	agentKind := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Kind == workflow.NodeKindAgent {
			agentKind[n.ID] = true
		}
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Kind != workflow.NodeKindAgent {
			continue
		}

		agent := m.crewAgent(n)
		crew.Agents = append(crew.Agents, agent)

		task := Task{
			Name:           n.ID,
			Description:    agent.Goal,
			ExpectedOutput: fmt.Sprintf("The completed output of the %s task", agent.Role),
			Agent:          agent.Role,
		}
		// Context propagates only from agent predecessors; triggers and
		// other structural nodes produce no task whose output could flow.
		for _, c := range g.Incoming(n.ID) {
			if agentKind[c.SourceID] {
				task.Context = append(task.Context, c.SourceID)
			}
		}
		crew.Tasks = append(crew.Tasks, task)
	}

	m.logger.Debug("workflow mapped to crewai",
		zap.String("workflow_id", g.ID),
		zap.Int("agents", len(crew.Agents)),
		zap.String("process", string(crew.Process)),
	)
	return crew, nil
}

func (m *Mapper) crewAgent(n *workflow.Node) Agent {
	if n.Agent != nil {
		agent := crewAgentFromSpec(n.Agent, n.Agent.Name)
		if n.Description != "" {
			// The node's own description wins over the spec's when both exist.
			agent.Goal = goalOf(n.Agent.SystemPrompt, n.Description, agent.Role)
			agent.Backstory = backstoryOf(n.Description, n.Agent.SystemPrompt, agent.Role)
		}
		return agent
	}

	// Late-bound reference: role and a link, nothing else to translate.
	role := n.DisplayName()
	return Agent{
		Role:      role,
		Goal:      goalOf("", n.Description, role),
		Backstory: backstoryOf(n.Description, "", role),
		AgentRef:  n.AgentID,
	}
}

func crewAgentFromSpec(spec *types.AgentSpec, role string) Agent {
	agent := Agent{
		Role:      role,
		Goal:      goalOf(spec.SystemPrompt, spec.Description, role),
		Backstory: backstoryOf(spec.Description, spec.SystemPrompt, role),
		Provider:  string(spec.Provider),
		Model:     spec.Model,
	}
	for _, tool := range spec.Tools {
		agent.Tools = append(agent.Tools, tool.Name)
	}
	return agent
}

// goalOf derives the goal: system prompt, else description, else a
// generated fallback mentioning the role.
func goalOf(systemPrompt, description, role string) string {
	if systemPrompt != "" {
		return systemPrompt
	}
	if description != "" {
		return description
	}
	return fmt.Sprintf("Carry out the responsibilities of the %s role", role)
}

// backstoryOf derives the backstory: description joined with the system
// prompt, else a generated fallback.
func backstoryOf(description, systemPrompt, role string) string {
	switch {
	case description != "" && systemPrompt != "":
		return description + " " + systemPrompt
	case description != "":
		return description
	case systemPrompt != "":
		return systemPrompt
	default:
		return fmt.Sprintf("An experienced %s working as part of an automated crew", role)
	}
}

// inferProcess classifies the workflow: sequential only when every node has
// at most one incoming and one outgoing connection; any branching or
// convergence selects hierarchical.
func inferProcess(g *workflow.Graph) Process {
	in := make(map[string]int, len(g.Nodes))
	out := make(map[string]int, len(g.Nodes))
	for _, c := range g.Connections {
		out[c.SourceID]++
		in[c.TargetID]++
	}
	for _, n := range g.Nodes {
		if in[n.ID] > 1 || out[n.ID] > 1 {
			return ProcessHierarchical
		}
	}
	return ProcessSequential
}
