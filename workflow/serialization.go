package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BaSui01/agentport/types"
)

// Serialization of workflow graphs. Construction from serialized form is
// atomic: a graph that fails validation is never handed back partially
// built.

// ToJSON renders the graph as indented JSON.
func (g *Graph) ToJSON() (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", types.WrapError(types.ErrSerialization, "marshal workflow to JSON", err)
	}
	return string(data), nil
}

// ToYAML renders the graph as YAML.
func (g *Graph) ToYAML() (string, error) {
	data, err := yaml.Marshal(g)
	if err != nil {
		return "", types.WrapError(types.ErrSerialization, "marshal workflow to YAML", err)
	}
	return string(data), nil
}

// FromJSON parses and validates a JSON workflow definition.
func FromJSON(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, types.WrapError(types.ErrSerialization, "unmarshal workflow from JSON", err)
	}
	return checked(&g)
}

// FromYAML parses and validates a YAML workflow definition.
func FromYAML(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, types.WrapError(types.ErrSerialization, "unmarshal workflow from YAML", err)
	}
	return checked(&g)
}

func checked(g *Graph) (*Graph, error) {
	res := Validate(context.Background(), g)
	if !res.Success {
		return nil, types.WrapError(types.ErrInvalidGraph, "workflow definition is invalid", res.Error)
	}
	return res.Data, nil
}

// LoadFile loads a workflow definition from a .json, .yaml, or .yml file,
// picking the codec by extension (JSON for anything unrecognized).
func LoadFile(filename string) (*Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read workflow file: %w", err)
	}
	if isYAMLFile(filename) {
		return FromYAML(data)
	}
	return FromJSON(data)
}

// SaveFile writes the graph to a file, picking the codec by extension.
func (g *Graph) SaveFile(filename string) error {
	var out string
	var err error
	if isYAMLFile(filename) {
		out, err = g.ToYAML()
	} else {
		out, err = g.ToJSON()
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write workflow file: %w", err)
	}
	return nil
}

func isYAMLFile(filename string) bool {
	n := len(filename)
	return (n > 5 && filename[n-5:] == ".yaml") || (n > 4 && filename[n-4:] == ".yml")
}
