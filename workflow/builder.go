package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BaSui01/agentport/types"
)

// GraphBuilder provides a fluent API for constructing workflow graphs in
// code. Build runs the full Validator, so a graph obtained from Build is
// safe input for every adapter.
type GraphBuilder struct {
	graph  Graph
	logger *zap.Logger
}

// NewGraphBuilder creates a builder for a workflow with the given name.
// The workflow id defaults to a fresh UUID; override it with WithID.
func NewGraphBuilder(name string) *GraphBuilder {
	return &GraphBuilder{
		graph: Graph{
			ID:   uuid.NewString(),
			Name: name,
		},
		logger: zap.NewNop(),
	}
}

// WithID overrides the generated workflow id.
func (b *GraphBuilder) WithID(id string) *GraphBuilder {
	b.graph.ID = id
	return b
}

// WithDescription sets the workflow description.
func (b *GraphBuilder) WithDescription(desc string) *GraphBuilder {
	b.graph.Description = desc
	return b
}

// WithBuilderLogger sets a custom logger.
func (b *GraphBuilder) WithBuilderLogger(logger *zap.Logger) *GraphBuilder {
	b.logger = logger.With(zap.String("component", "graph_builder"))
	return b
}

// AddNode adds a node and returns a NodeBuilder for configuration.
func (b *GraphBuilder) AddNode(id string, kind NodeKind) *NodeBuilder {
	b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Kind: kind})
	return &NodeBuilder{
		idx:    len(b.graph.Nodes) - 1,
		parent: b,
	}
}

// AddAgentNode adds an agent node bound to an external agent id.
func (b *GraphBuilder) AddAgentNode(id, agentID string) *GraphBuilder {
	b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Kind: NodeKindAgent, AgentID: agentID})
	return b
}

// AddInlineAgentNode adds an agent node carrying an inline agent spec.
func (b *GraphBuilder) AddInlineAgentNode(id string, spec *types.AgentSpec) *GraphBuilder {
	b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Kind: NodeKindAgent, Agent: spec})
	return b
}

// Connect adds an unconditional connection from source to target.
func (b *GraphBuilder) Connect(sourceID, targetID string) *GraphBuilder {
	return b.ConnectIf(sourceID, targetID, "")
}

// ConnectIf adds a connection carrying a condition label. An empty label
// adds an unconditional connection.
func (b *GraphBuilder) ConnectIf(sourceID, targetID, condition string) *GraphBuilder {
	b.graph.Connections = append(b.graph.Connections, Connection{
		ID:        fmt.Sprintf("%s-%s-%d", sourceID, targetID, len(b.graph.Connections)),
		SourceID:  sourceID,
		TargetID:  targetID,
		Condition: condition,
	})
	return b
}

// WithTrigger sets the workflow trigger.
func (b *GraphBuilder) WithTrigger(kind TriggerKind, config map[string]any) *GraphBuilder {
	b.graph.Trigger = &Trigger{Kind: kind, Config: config}
	return b
}

// WithVariable declares a workflow variable.
func (b *GraphBuilder) WithVariable(v Variable) *GraphBuilder {
	b.graph.Variables = append(b.graph.Variables, v)
	return b
}

// Build validates the assembled graph and returns it, or the validation
// issues folded into an error.
func (b *GraphBuilder) Build() (*Graph, error) {
	g := b.graph
	res := Validate(context.Background(), &g)
	if !res.Success {
		return nil, types.WrapError(types.ErrInvalidGraph, "graph validation failed", res.Error)
	}

	b.logger.Info("workflow graph built",
		zap.String("id", g.ID),
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("connections", len(g.Connections)),
	)
	return res.Data, nil
}

// NodeBuilder configures one node added through AddNode.
type NodeBuilder struct {
	idx    int
	parent *GraphBuilder
}

// node resolves through the index so later appends cannot leave the
// builder pointing into a stale backing array.
func (nb *NodeBuilder) node() *Node {
	return &nb.parent.graph.Nodes[nb.idx]
}

// WithName sets the node display name.
func (nb *NodeBuilder) WithName(name string) *NodeBuilder {
	nb.node().Name = name
	return nb
}

// WithDescription sets the node description.
func (nb *NodeBuilder) WithDescription(desc string) *NodeBuilder {
	nb.node().Description = desc
	return nb
}

// WithAgentID binds the node to an external agent.
func (nb *NodeBuilder) WithAgentID(agentID string) *NodeBuilder {
	nb.node().AgentID = agentID
	return nb
}

// WithAgent embeds an inline agent spec.
func (nb *NodeBuilder) WithAgent(spec *types.AgentSpec) *NodeBuilder {
	nb.node().Agent = spec
	return nb
}

// WithPosition sets the canvas position.
func (nb *NodeBuilder) WithPosition(x, y float64) *NodeBuilder {
	nb.node().Position = &Position{X: x, Y: y}
	return nb
}

// WithMetadata attaches an opaque metadata entry.
func (nb *NodeBuilder) WithMetadata(key string, value any) *NodeBuilder {
	n := nb.node()
	if n.Metadata == nil {
		n.Metadata = make(map[string]any)
	}
	n.Metadata[key] = value
	return nb
}

// Done returns to the graph builder.
func (nb *NodeBuilder) Done() *GraphBuilder {
	return nb.parent
}
