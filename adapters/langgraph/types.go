package langgraph

// Document shapes of the LangGraph state-machine export format.

// StateGraph is one exported state machine.
type StateGraph struct {
	Name         string                `json:"name"`
	EntryPoint   string                `json:"entryPoint"`
	Nodes        map[string]Node       `json:"nodes"`
	Edges        []Edge                `json:"edges"`
	State        map[string]StateField `json:"state"`
	Checkpointer Checkpointer          `json:"checkpointer"`
}

// Node is one named state-machine node. Exactly one of Agent and AgentRef
// is set for agent nodes; neither for structural nodes.
type Node struct {
	Kind     string `json:"kind"`
	Agent    *Agent `json:"agent,omitempty"`
	AgentRef string `json:"agentRef,omitempty"`
	Next     *Next  `json:"next,omitempty"`
}

// NextKind tags the form of a node's successor declaration.
type NextKind string

const (
	NextSingle      NextKind = "single"
	NextParallel    NextKind = "parallel"
	NextConditional NextKind = "conditional"
)

// Next declares a node's successors in one of the three forms. Branches
// keys are condition labels; DefaultKey marks the unconditioned branch.
type Next struct {
	Kind     NextKind          `json:"kind"`
	Node     string            `json:"node,omitempty"`
	Parallel []string          `json:"parallel,omitempty"`
	Branches map[string]string `json:"branches,omitempty"`
}

// DefaultKey keys the default branch in a conditional Next.
const DefaultKey = "__default__"

// Edge is one directed edge of the exported machine.
type Edge struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Condition string `json:"condition,omitempty"`
}

// StateField describes one slot of the machine's state schema.
type StateField struct {
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
}

// Checkpointer is the persistence descriptor attached to every export.
// Kind "memory" means in-process checkpoints with no external store.
type Checkpointer struct {
	Kind string `json:"kind"`
}

// Agent is the fully translated form of an inline agent spec.
type Agent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Provider     string         `json:"provider"`
	Model        string         `json:"model"`
	SystemPrompt string         `json:"systemPrompt,omitempty"`
	Temperature  float64        `json:"temperature,omitempty"`
	MaxTokens    int            `json:"maxTokens,omitempty"`
	Tools        []string       `json:"tools,omitempty"`
	Memory       map[string]any `json:"memory,omitempty"`
}
