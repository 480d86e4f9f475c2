package workflow

import (
	"github.com/BaSui01/agentport/types"
)

// NodeKind defines the type of a workflow node.
type NodeKind string

const (
	// NodeKindAgent executes one agent.
	NodeKindAgent NodeKind = "agent"
	// NodeKindTrigger marks the node at which execution begins.
	NodeKindTrigger NodeKind = "trigger"
	// NodeKindCondition performs conditional branching.
	NodeKindCondition NodeKind = "condition"
	// NodeKindLoop performs batched iteration.
	NodeKindLoop NodeKind = "loop"
	// NodeKindEnd terminates a path through the graph.
	NodeKindEnd NodeKind = "end"
)

// TriggerKind defines how execution of a workflow begins.
type TriggerKind string

const (
	TriggerManual   TriggerKind = "manual"
	TriggerSchedule TriggerKind = "schedule"
	TriggerWebhook  TriggerKind = "webhook"
	TriggerEvent    TriggerKind = "event"
)

// VariableType enumerates the declared types of workflow variables.
type VariableType string

const (
	VariableString  VariableType = "string"
	VariableNumber  VariableType = "number"
	VariableBoolean VariableType = "boolean"
	VariableObject  VariableType = "object"
	VariableArray   VariableType = "array"
)

// Position is a node's location on a visual canvas. It is carried through to
// target documents but never affects analysis or execution semantics.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is one step in a workflow graph.
//
// An agent-kind node carries exactly one agent reference: either AgentID
// (late-bound, resolved by the target engine) or an inline Agent spec
// (early-bound, fully translated). The validator rejects nodes with neither.
type Node struct {
	ID          string           `json:"id" yaml:"id"`
	Kind        NodeKind         `json:"kind" yaml:"kind"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	AgentID     string           `json:"agent_id,omitempty" yaml:"agent_id,omitempty"`
	Agent       *types.AgentSpec `json:"agent,omitempty" yaml:"agent,omitempty"`
	Position    *Position        `json:"position,omitempty" yaml:"position,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DisplayName returns the node name, falling back to its id.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Connection is one directed edge between two nodes.
//
// Condition is an opaque label. Its only structural meaning: when any
// outgoing connection of a node carries a non-empty Condition, that node's
// whole fan-out is classified as conditional branching rather than parallel
// fan-out. See ClassifyFanOut.
type Connection struct {
	ID        string `json:"id" yaml:"id"`
	SourceID  string `json:"source_id" yaml:"source_id"`
	TargetID  string `json:"target_id" yaml:"target_id"`
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Trigger describes how execution of a workflow begins. Config is a
// kind-specific opaque bag: a cron expression under "cron" for schedule
// triggers, a path/URL for webhooks, an event name for event triggers.
type Trigger struct {
	Kind   TriggerKind    `json:"kind" yaml:"kind"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// Variable is a named, typed input/output slot. Variables are purely
// descriptive; targets carry them into their own initial-state vocabulary.
type Variable struct {
	Name        string       `json:"name" yaml:"name"`
	Type        VariableType `json:"type" yaml:"type"`
	Default     any          `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// Graph is the unit of work: a directed graph of nodes and connections.
// Constructed once from external input and treated as immutable thereafter;
// analysis functions never mutate it.
type Graph struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes       []Node         `json:"nodes" yaml:"nodes"`
	Connections []Connection   `json:"connections" yaml:"connections"`
	Trigger     *Trigger       `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Variables   []Variable     `json:"variables,omitempty" yaml:"variables,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FindNode returns the node with the given id.
func (g *Graph) FindNode(id string) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// nodeIndex builds the id → node lookup map used by one analysis pass.
func (g *Graph) nodeIndex() map[string]*Node {
	idx := make(map[string]*Node, len(g.Nodes))
	for i := range g.Nodes {
		idx[g.Nodes[i].ID] = &g.Nodes[i]
	}
	return idx
}

// adjacency builds the source id → target ids structure used by one
// analysis pass. Edge order follows connection declaration order.
func (g *Graph) adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, c := range g.Connections {
		adj[c.SourceID] = append(adj[c.SourceID], c.TargetID)
	}
	return adj
}

// Outgoing returns the connections whose source is the given node, in
// declaration order.
func (g *Graph) Outgoing(nodeID string) []Connection {
	var out []Connection
	for _, c := range g.Connections {
		if c.SourceID == nodeID {
			out = append(out, c)
		}
	}
	return out
}

// Incoming returns the connections whose target is the given node, in
// declaration order.
func (g *Graph) Incoming(nodeID string) []Connection {
	var in []Connection
	for _, c := range g.Connections {
		if c.TargetID == nodeID {
			in = append(in, c)
		}
	}
	return in
}
