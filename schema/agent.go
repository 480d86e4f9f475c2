package schema

import (
	"bytes"
	"fmt"
	"strconv"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/BaSui01/agentport/types"
)

// ValidateAgent checks one agent spec field by field and returns the uniform
// verdict shape: success with the spec, or failure with path-tagged issues.
// The spec is never mutated.
func ValidateAgent(spec *types.AgentSpec) types.Result[*types.AgentSpec] {
	if spec == nil {
		return types.Fail[*types.AgentSpec]("agent validation failed", []types.Issue{
			types.IssueAt("agent spec is nil"),
		})
	}

	var issues []types.Issue

	if spec.ID == "" {
		issues = append(issues, types.IssueAt("agent id must not be empty", "id"))
	}
	if spec.Name == "" {
		issues = append(issues, types.IssueAt("agent name must not be empty", "name"))
	}

	if spec.Provider == "" {
		issues = append(issues, types.IssueAt("provider is required", "provider"))
	} else if !knownProvider(spec.Provider) {
		issues = append(issues, types.IssueAt(fmt.Sprintf("unknown provider %q", spec.Provider), "provider"))
	}

	if spec.Model == "" {
		issues = append(issues, types.IssueAt("model is required", "model"))
	}

	if spec.Temperature < 0 || spec.Temperature > 2 {
		issues = append(issues, types.IssueAt("temperature must be between 0 and 2", "temperature"))
	}
	if spec.TopP < 0 || spec.TopP > 1 {
		issues = append(issues, types.IssueAt("top_p must be between 0 and 1", "top_p"))
	}
	if spec.MaxTokens < 0 {
		issues = append(issues, types.IssueAt("max_tokens must not be negative", "max_tokens"))
	}

	toolNames := make(map[string]bool, len(spec.Tools))
	for i, tool := range spec.Tools {
		idx := strconv.Itoa(i)
		if tool.Name == "" {
			issues = append(issues, types.IssueAt("tool name must not be empty", "tools", idx, "name"))
			continue
		}
		if toolNames[tool.Name] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("duplicate tool name %q", tool.Name), "tools", idx, "name"))
		}
		toolNames[tool.Name] = true

		if tool.Parameters != nil {
			if err := compileToolSchema(tool.Parameters, i); err != nil {
				issues = append(issues, types.IssueAt(
					fmt.Sprintf("parameters is not a valid JSON schema: %v", err),
					"tools", idx, "parameters"))
			}
		}
	}

	if spec.Memory != nil {
		switch spec.Memory.Kind {
		case types.MemoryShortTerm, types.MemoryLongTerm, types.MemoryBoth:
		default:
			issues = append(issues, types.IssueAt(fmt.Sprintf("unknown memory kind %q", spec.Memory.Kind), "memory", "kind"))
		}
		if spec.Memory.Capacity < 0 {
			issues = append(issues, types.IssueAt("memory capacity must not be negative", "memory", "capacity"))
		}
	}

	if len(issues) > 0 {
		return types.Fail[*types.AgentSpec]("agent validation failed", issues)
	}
	return types.OK(spec)
}

func knownProvider(p types.Provider) bool {
	for _, known := range types.KnownProviders {
		if p == known {
			return true
		}
	}
	return false
}

// compileToolSchema runs a tool's parameter declaration through a real JSON
// Schema compiler so structural mistakes (bad types, contradictory keywords)
// surface at validation time instead of inside a target engine.
func compileToolSchema(s *types.JSONSchema, toolIndex int) error {
	raw, err := s.ToJSON()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("inline://agentport/tools/%d.json", toolIndex)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return err
	}
	if _, err := c.Compile(url); err != nil {
		return err
	}
	return nil
}
