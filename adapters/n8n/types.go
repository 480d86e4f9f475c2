package n8n

// Document shapes of the n8n workflow export format. Field names and
// nesting mirror what the n8n editor imports; only the structure matters
// here, execution is the engine's business.

// Workflow is one importable n8n workflow document.
type Workflow struct {
	Name        string         `json:"name"`
	Nodes       []Node         `json:"nodes"`
	Connections Connections    `json:"connections"`
	Active      bool           `json:"active"`
	Settings    map[string]any `json:"settings"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// Node is one typed n8n unit.
type Node struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	TypeVersion float64               `json:"typeVersion"`
	Position    [2]float64            `json:"position"`
	Parameters  map[string]any        `json:"parameters"`
	Credentials map[string]Credential `json:"credentials,omitempty"`
}

// Credential is one named credential slot on a node.
type Credential struct {
	Name string `json:"name"`
}

// Connections maps a source node's display name to its output ports.
type Connections map[string]Ports

// Ports holds the ordered output slots of one node. Conditional branches
// occupy one slot each; parallel fan-out shares slot zero.
type Ports struct {
	Main [][]Link `json:"main"`
}

// Link is one wire from an output slot to a target node's input.
type Link struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// n8n unit types emitted by the mapper.
const (
	TypeAgent           = "@n8n/n8n-nodes-langchain.agent"
	TypeManualTrigger   = "n8n-nodes-base.manualTrigger"
	TypeScheduleTrigger = "n8n-nodes-base.scheduleTrigger"
	TypeWebhookTrigger  = "n8n-nodes-base.webhook"
	TypeEventTrigger    = "n8n-nodes-base.eventTrigger"
	TypeIf              = "n8n-nodes-base.if"
	TypeSplitInBatches  = "n8n-nodes-base.splitInBatches"
	TypeNoOp            = "n8n-nodes-base.noOp"
)
