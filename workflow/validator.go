package workflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BaSui01/agentport/internal/metrics"
	"github.com/BaSui01/agentport/internal/telemetry"
	"github.com/BaSui01/agentport/types"
)

var nodeKinds = map[NodeKind]bool{
	NodeKindAgent:     true,
	NodeKindTrigger:   true,
	NodeKindCondition: true,
	NodeKindLoop:      true,
	NodeKindEnd:       true,
}

var triggerKinds = map[TriggerKind]bool{
	TriggerManual:   true,
	TriggerSchedule: true,
	TriggerWebhook:  true,
	TriggerEvent:    true,
}

var variableTypes = map[VariableType]bool{
	VariableString:  true,
	VariableNumber:  true,
	VariableBoolean: true,
	VariableObject:  true,
	VariableArray:   true,
}

// Validator produces a single pass/fail verdict for a workflow graph by
// composing structural checks with a policy decision on cycles. A graph that
// passes is safe input for every adapter: all connection endpoints resolve,
// every agent node carries exactly one agent reference, and the graph is
// acyclic.
type Validator struct {
	logger *zap.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) ValidatorOption {
	return func(v *Validator) {
		v.logger = logger.With(zap.String("component", "workflow_validator"))
	}
}

// NewValidator creates a Validator. Without options it logs nowhere, which
// is the right default for library embedding.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the graph and returns the uniform verdict shape: success
// carrying the graph itself, or failure carrying path-tagged issues. The
// input is never mutated, so re-validating the Data of a success yields the
// same verdict.
func (v *Validator) Validate(ctx context.Context, g *Graph) types.Result[*Graph] {
	ctx, span := telemetry.Start(ctx, "workflow.Validate")
	defer span.End()
	_ = ctx

	if g == nil {
		return types.Fail[*Graph]("workflow validation failed", []types.Issue{
			types.IssueAt("workflow graph is nil"),
		})
	}

	issues := structuralIssues(g)

	// Cycle policy only applies to structurally sound graphs; running the
	// DFS over dangling endpoints would report facts about a graph the
	// caller never described.
	if len(issues) == 0 && HasCycle(g) {
		issues = append(issues, types.IssueAt("workflow contains a cycle; execution order is undefined", "connections"))
	}

	if len(issues) > 0 {
		v.logger.Warn("workflow validation failed",
			zap.String("workflow_id", g.ID),
			zap.Int("issues", len(issues)),
		)
		telemetry.MarkFailed(span, len(issues))
		metrics.Default().ObserveValidation("failure")
		return types.Fail[*Graph]("workflow validation failed", issues)
	}

	metrics.Default().ObserveValidation("success")
	v.logger.Debug("workflow validated",
		zap.String("workflow_id", g.ID),
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("connections", len(g.Connections)),
	)
	return types.OK(g)
}

// Validate runs a default Validator over the graph.
func Validate(ctx context.Context, g *Graph) types.Result[*Graph] {
	return NewValidator().Validate(ctx, g)
}

// structuralIssues enforces the construction invariants: required fields,
// unique node ids, resolvable connection endpoints, and exactly one agent
// reference per agent node. Duplicate variable names are rejected here too
// rather than left to last-write-wins in target state schemas.
func structuralIssues(g *Graph) []types.Issue {
	var issues []types.Issue

	if g.ID == "" {
		issues = append(issues, types.IssueAt("workflow id must not be empty", "id"))
	}
	if g.Name == "" {
		issues = append(issues, types.IssueAt("workflow name must not be empty", "name"))
	}

	if len(g.Nodes) == 0 {
		issues = append(issues, types.IssueAt("workflow must declare at least one node", "nodes"))
	}

	nodeIDs := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		idx := strconv.Itoa(i)
		if n.ID == "" {
			issues = append(issues, types.IssueAt("node id must not be empty", "nodes", idx, "id"))
			continue
		}
		if nodeIDs[n.ID] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("duplicate node id %q", n.ID), "nodes", idx, "id"))
		}
		nodeIDs[n.ID] = true

		if !nodeKinds[n.Kind] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("unknown node kind %q", n.Kind), "nodes", idx, "kind"))
		}

		if n.Kind == NodeKindAgent {
			switch {
			case n.AgentID == "" && n.Agent == nil:
				issues = append(issues, types.IssueAt("agent node must carry an agent_id or an inline agent", "nodes", idx))
			case n.AgentID != "" && n.Agent != nil:
				issues = append(issues, types.IssueAt("agent node must carry exactly one of agent_id and inline agent", "nodes", idx))
			}
		}
	}

	for i, c := range g.Connections {
		idx := strconv.Itoa(i)
		if c.ID == "" {
			issues = append(issues, types.IssueAt("connection id must not be empty", "connections", idx, "id"))
		}
		if c.SourceID == "" || !nodeIDs[c.SourceID] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("connection source %q does not name a node", c.SourceID), "connections", idx, "source_id"))
		}
		if c.TargetID == "" || !nodeIDs[c.TargetID] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("connection target %q does not name a node", c.TargetID), "connections", idx, "target_id"))
		}
	}

	if g.Trigger != nil {
		issues = append(issues, triggerIssues(g.Trigger)...)
	}

	varNames := make(map[string]bool, len(g.Variables))
	for i, vr := range g.Variables {
		idx := strconv.Itoa(i)
		if vr.Name == "" {
			issues = append(issues, types.IssueAt("variable name must not be empty", "variables", idx, "name"))
			continue
		}
		if varNames[vr.Name] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("duplicate variable name %q", vr.Name), "variables", idx, "name"))
		}
		varNames[vr.Name] = true

		if !variableTypes[vr.Type] {
			issues = append(issues, types.IssueAt(fmt.Sprintf("unknown variable type %q", vr.Type), "variables", idx, "type"))
		}
	}

	return issues
}

func triggerIssues(t *Trigger) []types.Issue {
	var issues []types.Issue

	if !triggerKinds[t.Kind] {
		issues = append(issues, types.IssueAt(fmt.Sprintf("unknown trigger kind %q", t.Kind), "trigger", "kind"))
		return issues
	}

	if t.Kind == TriggerSchedule {
		expr, _ := t.Config["cron"].(string)
		if expr == "" {
			issues = append(issues, types.IssueAt("schedule trigger requires a cron expression", "trigger", "config", "cron"))
		} else if _, err := cron.ParseStandard(expr); err != nil {
			issues = append(issues, types.IssueAt(fmt.Sprintf("invalid cron expression %q: %v", expr, err), "trigger", "config", "cron"))
		}
	}

	return issues
}
