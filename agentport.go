// Package agentport provides a top-level convenience entry point for
// describing, validating, and exporting agent workflows with minimal
// boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/agentport"
//
//	g, err := agentport.NewWorkflow("support-bot").
//	    AddAgentNode("triage", "agent-triage").
//	    Build()
//	bundle, err := agentport.ExportAll(ctx, g, nil)
//
// This is a thin wrapper around the workflow and adapters packages; both
// produce identical results. Use this package when you prefer the shorter
// import path.
package agentport

import (
	"github.com/BaSui01/agentport/adapters"
	"github.com/BaSui01/agentport/workflow"
)

// Graph is a platform-neutral workflow graph.
type Graph = workflow.Graph

// Bundle holds one exported document per translation target.
type Bundle = adapters.Bundle

// ExportOptions carries per-target translation options for [ExportAll].
type ExportOptions = adapters.ExportOptions

// Re-export the common entry points so callers never need to import
// workflow/ or adapters/ directly.

// NewWorkflow starts a fluent graph builder. Build validates the result.
var NewWorkflow = workflow.NewGraphBuilder

// Validate runs the composed graph validator and returns a verdict.
var Validate = workflow.Validate

// FromJSON parses and validates a graph from JSON.
var FromJSON = workflow.FromJSON

// FromYAML parses and validates a graph from YAML.
var FromYAML = workflow.FromYAML

// LoadFile loads a graph from a .json or .yaml/.yml file.
var LoadFile = workflow.LoadFile

// ExportAll translates a validated graph to every supported target.
var ExportAll = adapters.ExportAll
