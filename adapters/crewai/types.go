package crewai

// Document shapes of the CrewAI crew export format.

// Process selects how the crew executes its tasks.
type Process string

const (
	ProcessSequential   Process = "sequential"
	ProcessHierarchical Process = "hierarchical"
)

// Crew is one exported crew document.
type Crew struct {
	Name    string  `json:"name"`
	Agents  []Agent `json:"agents"`
	Tasks   []Task  `json:"tasks"`
	Process Process `json:"process"`
	Verbose bool    `json:"verbose"`
}

// Agent is one role-oriented crew member. For late-bound references only
// Role and AgentRef are set; the engine resolves the rest.
type Agent struct {
	Role            string   `json:"role"`
	Goal            string   `json:"goal"`
	Backstory       string   `json:"backstory"`
	Provider        string   `json:"provider,omitempty"`
	Model           string   `json:"model,omitempty"`
	Tools           []string `json:"tools,omitempty"`
	AgentRef        string   `json:"agentRef,omitempty"`
	AllowDelegation bool     `json:"allowDelegation"`
}

// Task is the single task paired with one crew agent. Context lists the
// tasks (by node id) whose output this task consumes.
type Task struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ExpectedOutput string   `json:"expectedOutput"`
	Agent          string   `json:"agent"`
	Context        []string `json:"context,omitempty"`
}
