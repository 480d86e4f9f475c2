package langgraph

import (
	"context"

	"go.uber.org/zap"

	"github.com/BaSui01/agentport/internal/telemetry"
	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

// Options is the LangGraph mapping options record. The zero value means a
// memory-kind checkpointer.
type Options struct {
	// CheckpointKind overrides the checkpointer kind. "" means "memory".
	CheckpointKind string
}

func (o Options) withDefaults() Options {
	if o.CheckpointKind == "" {
		o.CheckpointKind = "memory"
	}
	return o
}

// Mapper translates validated workflow graphs and single agent specs into
// LangGraph state-machine documents. Validity is assumed, not re-checked.
type Mapper struct {
	opts   Options
	logger *zap.Logger
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) MapperOption {
	return func(m *Mapper) {
		m.logger = logger.With(zap.String("component", "langgraph_mapper"))
	}
}

// NewMapper creates a Mapper. A nil options pointer selects all defaults.
func NewMapper(opts *Options, mopts ...MapperOption) *Mapper {
	m := &Mapper{logger: zap.NewNop()}
	if opts != nil {
		m.opts = *opts
	}
	m.opts = m.opts.withDefaults()
	for _, o := range mopts {
		o(m)
	}
	return m
}

// MapAgent translates one agent spec into a standalone LangGraph agent
// description for callers who have no graph.
func (m *Mapper) MapAgent(ctx context.Context, spec *types.AgentSpec) (*Agent, error) {
	_, span := telemetry.Start(ctx, "langgraph.MapAgent", telemetry.Target("langgraph"))
	defer span.End()

	if spec == nil {
		err := types.NewError(types.ErrTranslation, "agent spec is nil").WithTarget("langgraph")
		telemetry.RecordError(span, err)
		return nil, err
	}
	return translateAgent(spec), nil
}

// MapWorkflow translates one validated workflow graph into a state machine.
func (m *Mapper) MapWorkflow(ctx context.Context, g *workflow.Graph) (*StateGraph, error) {
	_, span := telemetry.Start(ctx, "langgraph.MapWorkflow", telemetry.Target("langgraph"))
	defer span.End()

	if g == nil {
		err := types.NewError(types.ErrTranslation, "workflow graph is nil").WithTarget("langgraph")
		telemetry.RecordError(span, err)
		return nil, err
	}

	doc := &StateGraph{
		Name:         g.Name,
		Nodes:        make(map[string]Node, len(g.Nodes)),
		State:        stateSchema(g.Variables),
		Checkpointer: Checkpointer{Kind: m.opts.CheckpointKind},
	}

	if entry := workflow.EntryNode(g); entry != nil {
		doc.EntryPoint = entry.ID
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		doc.Nodes[n.ID] = m.mapNode(g, n)
	}

	for _, c := range g.Connections {
		doc.Edges = append(doc.Edges, Edge{
			Source:    c.SourceID,
			Target:    c.TargetID,
			Condition: c.Condition,
		})
	}

	m.logger.Debug("workflow mapped to langgraph",
		zap.String("workflow_id", g.ID),
		zap.Int("nodes", len(doc.Nodes)),
	)
	return doc, nil
}

func (m *Mapper) mapNode(g *workflow.Graph, n *workflow.Node) Node {
	node := Node{Kind: string(n.Kind)}

	if n.Kind == workflow.NodeKindAgent {
		if n.Agent != nil {
			node.Agent = translateAgent(n.Agent)
		} else {
			node.AgentRef = n.AgentID
		}
	}

	node.Next = nextOf(workflow.FanOutOf(g, n.ID))
	return node
}

// nextOf renders the fan-out classification in the target's vocabulary:
// a single id, the parallel-array form, or the conditional-map form.
func nextOf(fo workflow.FanOut) *Next {
	switch fo.Kind {
	case workflow.FanOutSingle:
		return &Next{Kind: NextSingle, Node: fo.Next}
	case workflow.FanOutParallel:
		return &Next{Kind: NextParallel, Parallel: fo.Parallel}
	case workflow.FanOutConditional:
		branches := make(map[string]string, len(fo.Branches))
		for _, b := range fo.Branches {
			key := b.Condition
			if key == "" {
				key = DefaultKey
			}
			branches[key] = b.TargetID
		}
		return &Next{Kind: NextConditional, Branches: branches}
	default:
		return nil
	}
}

// stateSchema merges declared variables with the two implicit fields. An
// explicitly declared input or output variable wins over the implicit one.
func stateSchema(vars []workflow.Variable) map[string]StateField {
	state := map[string]StateField{
		"input":  {Type: string(workflow.VariableString), Default: ""},
		"output": {Type: string(workflow.VariableString), Default: ""},
	}
	for _, v := range vars {
		state[v.Name] = StateField{Type: string(v.Type), Default: v.Default}
	}
	return state
}

func translateAgent(spec *types.AgentSpec) *Agent {
	a := &Agent{
		ID:           spec.ID,
		Name:         spec.Name,
		Provider:     string(spec.Provider),
		Model:        spec.Model,
		SystemPrompt: spec.SystemPrompt,
		Temperature:  spec.Temperature,
		MaxTokens:    spec.MaxTokens,
	}
	for _, tool := range spec.Tools {
		a.Tools = append(a.Tools, tool.Name)
	}
	if spec.Memory != nil {
		a.Memory = map[string]any{
			"kind":     string(spec.Memory.Kind),
			"capacity": spec.Memory.Capacity,
		}
	}
	return a
}
