package n8n

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BaSui01/agentport/internal/telemetry"
	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

// Options is the n8n mapping options record. The zero value means: 250/150
// node spacing, credential slots included, exported workflow inactive.
type Options struct {
	// SpacingX is the horizontal offset per BFS level. 0 means 250.
	SpacingX float64
	// SpacingY is the vertical offset per sibling within a level. 0 means 150.
	SpacingY float64
	// OmitCredentials skips credential slots entirely. Default false.
	OmitCredentials bool
	// Active sets the exported workflow's active flag. Default false.
	Active bool
}

func (o Options) withDefaults() Options {
	if o.SpacingX == 0 {
		o.SpacingX = 250
	}
	if o.SpacingY == 0 {
		o.SpacingY = 150
	}
	return o
}

// Mapper translates validated workflow graphs and single agent specs into
// n8n documents. It assumes validity was established upstream and does not
// re-validate.
type Mapper struct {
	opts   Options
	logger *zap.Logger
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) MapperOption {
	return func(m *Mapper) {
		m.logger = logger.With(zap.String("component", "n8n_mapper"))
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

// MapAgent translates one agent spec into a standalone n8n agent node for
// callers who have no graph.
func (m *Mapper) MapAgent(ctx context.Context, spec *types.AgentSpec) (*Node, error) {
	_, span := telemetry.Start(ctx, "n8n.MapAgent", telemetry.Target("n8n"))
	defer span.End()

	if spec == nil {
		err := types.NewError(types.ErrTranslation, "agent spec is nil").WithTarget("n8n")
		telemetry.RecordError(span, err)
		return nil, err
	}

	node := &Node{
		ID:          uuid.NewString(),
		Name:        spec.Name,
		Type:        TypeAgent,
		TypeVersion: 1,
		Position:    [2]float64{0, 0},
		Parameters:  agentParameters(spec),
	}
	m.attachCredentials(node, spec)
	return node, nil
}

// MapWorkflow translates one validated workflow graph into an n8n document.
func (m *Mapper) MapWorkflow(ctx context.Context, g *workflow.Graph) (*Workflow, error) {
	_, span := telemetry.Start(ctx, "n8n.MapWorkflow", telemetry.Target("n8n"))
	defer span.End()

	if g == nil {
		err := types.NewError(types.ErrTranslation, "workflow graph is nil").WithTarget("n8n")
		telemetry.RecordError(span, err)
		return nil, err
	}

	doc := &Workflow{
		Name:        g.Name,
		Active:      m.opts.Active,
		Settings:    map[string]any{},
		Connections: Connections{},
		Meta:        map[string]any{"workflowId": g.ID},
	}

	positions := m.layout(g)
	for i := range g.Nodes {
		doc.Nodes = append(doc.Nodes, m.mapNode(g, &g.Nodes[i], positions[g.Nodes[i].ID]))
	}

	m.buildConnections(g, doc)

	m.logger.Debug("workflow mapped to n8n",
		zap.String("workflow_id", g.ID),
		zap.Int("nodes", len(doc.Nodes)),
	)
	return doc, nil
}

// layout assigns canvas positions by BFS leveling: monotonically increasing
// horizontal offset per level, vertical offset per sibling within a level.
func (m *Mapper) layout(g *workflow.Graph) map[string][2]float64 {
	positions := make(map[string][2]float64, len(g.Nodes))
	for level, ids := range workflow.Levels(g) {
		for sibling, id := range ids {
			positions[id] = [2]float64{
				float64(level) * m.opts.SpacingX,
				float64(sibling) * m.opts.SpacingY,
			}
		}
	}
	return positions
}

func (m *Mapper) mapNode(g *workflow.Graph, n *workflow.Node, pos [2]float64) Node {
	node := Node{
		ID:          uuid.NewString(),
		Name:        n.DisplayName(),
		TypeVersion: 1,
		Position:    pos,
		Parameters:  map[string]any{},
	}

	switch n.Kind {
	case workflow.NodeKindAgent:
		node.Type = TypeAgent
		if n.Agent != nil {
			node.Parameters = agentParameters(n.Agent)
			m.attachCredentials(&node, n.Agent)
		} else {
			// Late-bound reference: the target engine resolves it, so no
			// provider or model detail is emitted.
			node.Parameters = map[string]any{"agentId": n.AgentID}
		}
	case workflow.NodeKindTrigger:
		node.Type, node.Parameters = triggerUnit(g.Trigger)
	case workflow.NodeKindCondition:
		node.Type = TypeIf
		if expr, ok := n.Metadata["expression"]; ok {
			node.Parameters["conditions"] = expr
		}
	case workflow.NodeKindLoop:
		node.Type = TypeSplitInBatches
		if size, ok := n.Metadata["batch_size"]; ok {
			node.Parameters["batchSize"] = size
		}
	default:
		node.Type = TypeNoOp
	}

	return node
}

// triggerUnit picks the trigger-specific unit type and carries the trigger
// config through verbatim.
func triggerUnit(t *workflow.Trigger) (string, map[string]any) {
	params := map[string]any{}
	if t == nil {
		return TypeManualTrigger, params
	}
	for k, v := range t.Config {
		params[k] = v
	}
	switch t.Kind {
	case workflow.TriggerSchedule:
		return TypeScheduleTrigger, params
	case workflow.TriggerWebhook:
		return TypeWebhookTrigger, params
	case workflow.TriggerEvent:
		return TypeEventTrigger, params
	default:
		return TypeManualTrigger, params
	}
}

func agentParameters(spec *types.AgentSpec) map[string]any {
	params := map[string]any{
		"provider": string(spec.Provider),
		"model":    spec.Model,
	}
	if spec.SystemPrompt != "" {
		params["systemMessage"] = spec.SystemPrompt
	}
	if spec.Temperature != 0 {
		params["temperature"] = spec.Temperature
	}
	if spec.MaxTokens != 0 {
		params["maxTokens"] = spec.MaxTokens
	}
	if len(spec.Tools) > 0 {
		tools := make([]string, 0, len(spec.Tools))
		for _, tool := range spec.Tools {
			tools = append(tools, tool.Name)
		}
		params["tools"] = tools
	}
	if spec.Memory != nil {
		params["memory"] = map[string]any{
			"kind":     string(spec.Memory.Kind),
			"capacity": spec.Memory.Capacity,
		}
	}
	return params
}

func (m *Mapper) attachCredentials(node *Node, spec *types.AgentSpec) {
	if m.opts.OmitCredentials {
		return
	}
	if kind, ok := CredentialKind(spec.Provider); ok {
		node.Credentials = map[string]Credential{
			kind: {Name: string(spec.Provider) + " account"},
		}
	}
}

// buildConnections wires the document's connection map, keyed by source
// display name. A connection whose endpoint cannot be resolved is dropped
// with a warning; that cannot happen on validated input, but callers who
// bypass validation get a skipped edge rather than a panic.
func (m *Mapper) buildConnections(g *workflow.Graph, doc *Workflow) {
	for i := range g.Nodes {
		source := &g.Nodes[i]
		fo := workflow.FanOutOf(g, source.ID)
		if fo.Kind == workflow.FanOutNone {
			continue
		}

		var slots [][]Link
		switch fo.Kind {
		case workflow.FanOutSingle:
			if link, ok := m.linkTo(g, fo.Next); ok {
				slots = [][]Link{{link}}
			}
		case workflow.FanOutParallel:
			var links []Link
			for _, target := range fo.Parallel {
				if link, ok := m.linkTo(g, target); ok {
					links = append(links, link)
				}
			}
			if len(links) > 0 {
				slots = [][]Link{links}
			}
		case workflow.FanOutConditional:
			for _, branch := range fo.Branches {
				if link, ok := m.linkTo(g, branch.TargetID); ok {
					slots = append(slots, []Link{link})
				}
			}
		}

		if len(slots) > 0 {
			doc.Connections[source.DisplayName()] = Ports{Main: slots}
		}
	}
}

func (m *Mapper) linkTo(g *workflow.Graph, targetID string) (Link, bool) {
	target, ok := g.FindNode(targetID)
	if !ok {
		m.logger.Warn("dropping connection to unresolved node", zap.String("target_id", targetID))
		return Link{}, false
	}
	return Link{Node: target.DisplayName(), Type: "main", Index: 0}, true
}
