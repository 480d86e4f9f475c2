// 配置加载器与默认配置测试。
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- 默认配置测试 ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// 验证存储默认值
	assert.Equal(t, "agentport.db", cfg.Store.DSN)

	// 验证导出默认值
	assert.Equal(t, float64(250), cfg.Export.N8N.SpacingX)
	assert.Equal(t, float64(150), cfg.Export.N8N.SpacingY)
	assert.False(t, cfg.Export.N8N.OmitCredentials)
	assert.Equal(t, "memory", cfg.Export.LangGraph.CheckpointKind)
	assert.Empty(t, cfg.Export.CrewAI.Process)

	// 验证 Log 默认值
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// --- Loader 测试 ---

func TestLoader_LoadDefaults(t *testing.T) {
	// 不指定配置文件，应该返回默认值
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "agentport.db", cfg.Store.DSN)
	assert.Equal(t, "memory", cfg.Export.LangGraph.CheckpointKind)
}

func TestLoader_LoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
store:
  dsn: ":memory:"

export:
  n8n:
    spacing_x: 320
    omit_credentials: true
    active: true
  langgraph:
    checkpoint_kind: "sqlite"
  crewai:
    process: "hierarchical"
    verbose: true

log:
  level: "debug"
  format: "console"
`
	err := os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := NewLoader().
		WithConfigPath(configPath).
		Load()
	require.NoError(t, err)

	// 验证 YAML 值覆盖了默认值
	assert.Equal(t, ":memory:", cfg.Store.DSN)
	assert.Equal(t, float64(320), cfg.Export.N8N.SpacingX)
	assert.Equal(t, float64(150), cfg.Export.N8N.SpacingY)
	assert.True(t, cfg.Export.N8N.OmitCredentials)
	assert.True(t, cfg.Export.N8N.Active)
	assert.Equal(t, "sqlite", cfg.Export.LangGraph.CheckpointKind)
	assert.Equal(t, "hierarchical", cfg.Export.CrewAI.Process)
	assert.True(t, cfg.Export.CrewAI.Verbose)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().
		WithConfigPath(filepath.Join(t.TempDir(), "no-such.yaml")).
		Load()
	require.NoError(t, err)
	assert.Equal(t, "agentport.db", cfg.Store.DSN)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("AGENTPORT_STORE_DSN", ":memory:")
	t.Setenv("AGENTPORT_EXPORT_N8N_SPACING_X", "400")
	t.Setenv("AGENTPORT_EXPORT_CREWAI_VERBOSE", "true")
	t.Setenv("AGENTPORT_LOG_OUTPUT_PATHS", "stdout, /var/log/agentport.log")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Store.DSN)
	assert.Equal(t, float64(400), cfg.Export.N8N.SpacingX)
	assert.True(t, cfg.Export.CrewAI.Verbose)
	assert.Equal(t, []string{"stdout", "/var/log/agentport.log"}, cfg.Log.OutputPaths)
}

func TestLoader_EnvBeatsYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0644))

	t.Setenv("AGENTPORT_LOG_LEVEL", "error")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("AP_LOG_LEVEL", "debug")

	cfg, err := NewLoader().WithEnvPrefix("AP").Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_InvalidEnvValue(t *testing.T) {
	t.Setenv("AGENTPORT_EXPORT_N8N_SPACING_X", "wide")

	_, err := NewLoader().Load()
	require.Error(t, err)
}

func TestLoader_ValidatorRejects(t *testing.T) {
	_, err := NewLoader().
		WithValidator(func(c *Config) error { return assert.AnError }).
		Load()
	require.Error(t, err)
}

// --- Validate 测试 ---

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Export.CrewAI.Process = "roundrobin"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	require.Error(t, cfg.Validate())
}

// --- ExportOptions 转换测试 ---

func TestExportConfig_ExportOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.N8N.OmitCredentials = true
	cfg.Export.CrewAI.Process = "sequential"

	opts := cfg.Export.ExportOptions()
	require.NotNil(t, opts.N8N)
	require.NotNil(t, opts.LangGraph)
	require.NotNil(t, opts.CrewAI)

	assert.Equal(t, float64(250), opts.N8N.SpacingX)
	assert.True(t, opts.N8N.OmitCredentials)
	assert.Equal(t, "memory", opts.LangGraph.CheckpointKind)
	assert.Equal(t, "sequential", string(opts.CrewAI.Process))
}
