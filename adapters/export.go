package adapters

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/agentport/adapters/crewai"
	"github.com/BaSui01/agentport/adapters/langgraph"
	"github.com/BaSui01/agentport/adapters/n8n"
	"github.com/BaSui01/agentport/internal/metrics"
	"github.com/BaSui01/agentport/internal/telemetry"
	"github.com/BaSui01/agentport/types"
	"github.com/BaSui01/agentport/workflow"
)

// Target identifies one translation target format.
type Target string

const (
	TargetN8N       Target = "n8n"
	TargetLangGraph Target = "langgraph"
	TargetCrewAI    Target = "crewai"
)

// Targets lists every supported translation target.
var Targets = []Target{TargetN8N, TargetLangGraph, TargetCrewAI}

// ExportOptions carries the per-target options records. A nil pointer for
// any target selects that target's documented defaults.
type ExportOptions struct {
	N8N       *n8n.Options
	LangGraph *langgraph.Options
	CrewAI    *crewai.Options
}

// Bundle holds one validated workflow rendered into all three targets.
type Bundle struct {
	N8N       *n8n.Workflow
	LangGraph *langgraph.StateGraph
	CrewAI    *crewai.Crew
}

// ExportAll translates one validated workflow graph into every target
// concurrently. The translators share nothing and never mutate the graph,
// so running them in parallel needs no locking. A nil opts selects all
// defaults.
func ExportAll(ctx context.Context, g *workflow.Graph, opts *ExportOptions) (*Bundle, error) {
	ctx, span := telemetry.Start(ctx, "adapters.ExportAll")
	defer span.End()

	if g == nil {
		err := types.NewError(types.ErrTranslation, "workflow graph is nil")
		telemetry.RecordError(span, err)
		return nil, err
	}
	if opts == nil {
		opts = &ExportOptions{}
	}

	var bundle Bundle
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		doc, err := timed(TargetN8N, func() (*n8n.Workflow, error) {
			return n8n.NewMapper(opts.N8N).MapWorkflow(ctx, g)
		})
		bundle.N8N = doc
		return err
	})
	eg.Go(func() error {
		doc, err := timed(TargetLangGraph, func() (*langgraph.StateGraph, error) {
			return langgraph.NewMapper(opts.LangGraph).MapWorkflow(ctx, g)
		})
		bundle.LangGraph = doc
		return err
	})
	eg.Go(func() error {
		doc, err := timed(TargetCrewAI, func() (*crewai.Crew, error) {
			return crewai.NewMapper(opts.CrewAI).MapWorkflow(ctx, g)
		})
		bundle.CrewAI = doc
		return err
	})

	if err := eg.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &bundle, nil
}

// timed wraps one translation with the shared metrics observation.
func timed[T any](target Target, fn func() (T, error)) (T, error) {
	start := time.Now()
	doc, err := fn()
	metrics.Default().ObserveTranslation(string(target), time.Since(start), err)
	return doc, err
}
