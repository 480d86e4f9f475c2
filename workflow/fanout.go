package workflow

// FanOutKind tags the classification of one node's outgoing connections.
type FanOutKind string

const (
	// FanOutNone means the node has no outgoing connections.
	FanOutNone FanOutKind = "none"
	// FanOutSingle means exactly one unconditional successor.
	FanOutSingle FanOutKind = "single"
	// FanOutParallel means multiple successors, none condition-labeled:
	// an unordered set of next nodes executed concurrently.
	FanOutParallel FanOutKind = "parallel"
	// FanOutConditional means at least one outgoing connection carries a
	// condition label; each branch is keyed by its label, with unlabeled
	// siblings forming the default branch.
	FanOutConditional FanOutKind = "conditional"
)

// Branch is one conditional branch. Condition is empty for the default
// branch.
type Branch struct {
	Condition string
	TargetID  string
}

// FanOut is the computed classification of one node's outgoing connections.
// Exactly one of Next, Parallel, Branches is populated, per Kind.
type FanOut struct {
	Kind     FanOutKind
	Next     string
	Parallel []string
	Branches []Branch
}

// ClassifyFanOut derives the tagged fan-out variant from a node's outgoing
// connections. Presence of any condition label wins: mixed conditional and
// unconditional siblings classify as conditional, the unconditional ones
// becoming default branches.
func ClassifyFanOut(outgoing []Connection) FanOut {
	switch len(outgoing) {
	case 0:
		return FanOut{Kind: FanOutNone}
	case 1:
		if outgoing[0].Condition != "" {
			return FanOut{
				Kind:     FanOutConditional,
				Branches: []Branch{{Condition: outgoing[0].Condition, TargetID: outgoing[0].TargetID}},
			}
		}
		return FanOut{Kind: FanOutSingle, Next: outgoing[0].TargetID}
	}

	conditional := false
	for _, c := range outgoing {
		if c.Condition != "" {
			conditional = true
			break
		}
	}

	if !conditional {
		targets := make([]string, 0, len(outgoing))
		for _, c := range outgoing {
			targets = append(targets, c.TargetID)
		}
		return FanOut{Kind: FanOutParallel, Parallel: targets}
	}

	branches := make([]Branch, 0, len(outgoing))
	for _, c := range outgoing {
		branches = append(branches, Branch{Condition: c.Condition, TargetID: c.TargetID})
	}
	return FanOut{Kind: FanOutConditional, Branches: branches}
}

// FanOutOf classifies the outgoing connections of the given node.
func FanOutOf(g *Graph, nodeID string) FanOut {
	return ClassifyFanOut(g.Outgoing(nodeID))
}
