package types

// Provider identifies an LLM provider in a platform-neutral way.
// The set mirrors the providers the sibling runtime ships adapters for;
// translation targets map these to their own credential vocabulary.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderDeepSeek  Provider = "deepseek"
	ProviderQwen      Provider = "qwen"
	ProviderGLM       Provider = "glm"
	ProviderKimi      Provider = "kimi"
	ProviderLlama     Provider = "llama"
	ProviderMinimax   Provider = "minimax"
)

// KnownProviders lists every provider the schema validator accepts.
var KnownProviders = []Provider{
	ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderDeepSeek,
	ProviderQwen, ProviderGLM, ProviderKimi, ProviderLlama, ProviderMinimax,
}

// AgentSpec is a declarative, provider-agnostic description of one agent.
// It is designed to be deserialized from YAML or JSON and carried through
// validation and translation without mutation.
type AgentSpec struct {
	// Identity
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`

	// Model
	Provider    Provider `yaml:"provider" json:"provider"`
	Model       string   `yaml:"model" json:"model"`
	Temperature float64  `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	TopP        float64  `yaml:"top_p,omitempty" json:"top_p,omitempty"`

	// Prompt
	SystemPrompt string `yaml:"system_prompt,omitempty" json:"system_prompt,omitempty"`

	// Tools
	Tools []ToolSpec `yaml:"tools,omitempty" json:"tools,omitempty"`

	// Memory
	Memory *MemorySpec `yaml:"memory,omitempty" json:"memory,omitempty"`

	// Metadata is carried through to target documents untouched.
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// ToolSpec describes one tool available to an agent.
type ToolSpec struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  *JSONSchema `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// MemoryKind enumerates the supported agent memory modes.
type MemoryKind string

const (
	MemoryShortTerm MemoryKind = "short_term"
	MemoryLongTerm  MemoryKind = "long_term"
	MemoryBoth      MemoryKind = "both"
)

// MemorySpec configures the agent's memory subsystem.
type MemorySpec struct {
	Kind     MemoryKind `yaml:"kind" json:"kind"`
	Capacity int        `yaml:"capacity,omitempty" json:"capacity,omitempty"`
}
