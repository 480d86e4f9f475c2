// =============================================================================
// 📦 AgentPort 配置结构与默认值
// =============================================================================
// 定义完整配置结构并提供所有配置项的合理默认值
// =============================================================================
package config

import (
	"github.com/BaSui01/agentport/adapters"
	"github.com/BaSui01/agentport/adapters/crewai"
	"github.com/BaSui01/agentport/adapters/langgraph"
	"github.com/BaSui01/agentport/adapters/n8n"
)

// Config 是 AgentPort 的完整配置结构
type Config struct {
	// Store 工作流目录存储配置
	Store StoreConfig `yaml:"store" env:"STORE"`

	// Export 导出目标配置
	Export ExportConfig `yaml:"export" env:"EXPORT"`

	// Log 日志配置
	Log LogConfig `yaml:"log" env:"LOG"`
}

// StoreConfig 存储配置
type StoreConfig struct {
	// SQLite DSN，":memory:" 表示纯内存
	DSN string `yaml:"dsn" env:"DSN"`
}

// ExportConfig 各导出目标的选项
type ExportConfig struct {
	// N8N 目标配置
	N8N N8NConfig `yaml:"n8n" env:"N8N"`
	// LangGraph 目标配置
	LangGraph LangGraphConfig `yaml:"langgraph" env:"LANGGRAPH"`
	// CrewAI 目标配置
	CrewAI CrewAIConfig `yaml:"crewai" env:"CREWAI"`
}

// N8NConfig n8n 导出配置
type N8NConfig struct {
	// 水平布局间距
	SpacingX float64 `yaml:"spacing_x" env:"SPACING_X"`
	// 垂直布局间距
	SpacingY float64 `yaml:"spacing_y" env:"SPACING_Y"`
	// 是否省略凭据槽位
	OmitCredentials bool `yaml:"omit_credentials" env:"OMIT_CREDENTIALS"`
	// 导出工作流的激活标志
	Active bool `yaml:"active" env:"ACTIVE"`
}

// LangGraphConfig LangGraph 导出配置
type LangGraphConfig struct {
	// 检查点类型: memory, sqlite, postgres
	CheckpointKind string `yaml:"checkpoint_kind" env:"CHECKPOINT_KIND"`
}

// CrewAIConfig CrewAI 导出配置
type CrewAIConfig struct {
	// 流程类型覆盖: sequential, hierarchical，空串表示自动推断
	Process string `yaml:"process" env:"PROCESS"`
	// crew 的 verbose 标志
	Verbose bool `yaml:"verbose" env:"VERBOSE"`
}

// LogConfig 日志配置
type LogConfig struct {
	// 日志级别: debug, info, warn, error
	Level string `yaml:"level" env:"LEVEL"`
	// 输出格式: json, console
	Format string `yaml:"format" env:"FORMAT"`
	// 输出路径
	OutputPaths []string `yaml:"output_paths" env:"OUTPUT_PATHS"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Store:  DefaultStoreConfig(),
		Export: DefaultExportConfig(),
		Log:    DefaultLogConfig(),
	}
}

// DefaultStoreConfig 返回默认存储配置
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		DSN: "agentport.db",
	}
}

// DefaultExportConfig 返回默认导出配置
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		N8N: N8NConfig{
			SpacingX: 250,
			SpacingY: 150,
		},
		LangGraph: LangGraphConfig{
			CheckpointKind: "memory",
		},
		CrewAI: CrewAIConfig{},
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{"stdout"},
	}
}

// ExportOptions 将导出配置转换为 adapters 层的选项集
func (e ExportConfig) ExportOptions() *adapters.ExportOptions {
	return &adapters.ExportOptions{
		N8N: &n8n.Options{
			SpacingX:        e.N8N.SpacingX,
			SpacingY:        e.N8N.SpacingY,
			OmitCredentials: e.N8N.OmitCredentials,
			Active:          e.N8N.Active,
		},
		LangGraph: &langgraph.Options{
			CheckpointKind: e.LangGraph.CheckpointKind,
		},
		CrewAI: &crewai.Options{
			Process: crewai.Process(e.CrewAI.Process),
			Verbose: e.CrewAI.Verbose,
		},
	}
}
