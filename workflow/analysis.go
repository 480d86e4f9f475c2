package workflow

// Graph analysis: pure, side-effect-free functions over a structurally valid
// Graph. They tolerate cyclic input and report facts, not verdicts; turning a
// cycle into a validation failure is the Validator's policy, not theirs.

// HasCycle reports whether the graph contains a directed cycle.
//
// Depth-first search from every unvisited node, keeping a recursion-stack
// set; a traversal that reaches a node already on the stack is a back edge.
// O(V+E). It does not attempt to enumerate or locate the cycle.
func HasCycle(g *Graph) bool {
	adj := g.adjacency()
	visited := make(map[string]bool, len(g.Nodes))
	onStack := make(map[string]bool, len(g.Nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		visited[id] = true
		onStack[id] = true
		for _, next := range adj[id] {
			if !visited[next] {
				if visit(next) {
					return true
				}
			} else if onStack[next] {
				return true
			}
		}
		onStack[id] = false
		return false
	}

	for _, n := range g.Nodes {
		if !visited[n.ID] {
			if visit(n.ID) {
				return true
			}
		}
	}
	return false
}

// TopologicalOrder returns a linear ordering of node ids consistent with
// every connection's direction, or nil when the graph is cyclic. Ordering
// is undefined in the presence of cycles, not best-effort.
//
// Kahn's algorithm: the queue is seeded with all in-degree-zero nodes in
// declaration order and drained FIFO. No canonical tie-break is claimed
// beyond that queue discipline.
func TopologicalOrder(g *Graph) []string {
	if HasCycle(g) {
		return nil
	}

	adj := g.adjacency()
	inDegree := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n.ID] = 0
	}
	for _, c := range g.Connections {
		inDegree[c.TargetID]++
	}

	queue := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	order := make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// A short order here means a cycle slipped past detection or the graph
	// is malformed; refuse to hand back a partial order.
	if len(order) != len(g.Nodes) {
		return nil
	}
	return order
}

// DisconnectedNodes returns the ids of nodes that are the endpoint of zero
// connections, in node-declaration order.
//
// This is a local degree check, not reachability from an entry node: a node
// with no incoming edge but an outgoing edge is connected.
func DisconnectedNodes(g *Graph) []string {
	touched := make(map[string]bool, len(g.Nodes))
	for _, c := range g.Connections {
		touched[c.SourceID] = true
		touched[c.TargetID] = true
	}

	disconnected := []string{}
	for _, n := range g.Nodes {
		if !touched[n.ID] {
			disconnected = append(disconnected, n.ID)
		}
	}
	return disconnected
}

// EntryNode resolves the node at which execution of a translated workflow
// begins: the first trigger-kind node if any, else the first declared node.
// Returns nil for an empty graph.
func EntryNode(g *Graph) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].Kind == NodeKindTrigger {
			return &g.Nodes[i]
		}
	}
	if len(g.Nodes) == 0 {
		return nil
	}
	return &g.Nodes[0]
}

// Levels computes a breadth-first leveling of the graph from all
// in-degree-zero nodes, ties broken by discovery order. Nodes unreachable
// from any root (only possible in cyclic graphs) are appended as one final
// level in declaration order so every node is placed.
//
// Adapters use this for cosmetic layout only; it never affects execution
// semantics.
func Levels(g *Graph) [][]string {
	adj := g.adjacency()
	inDegree := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n.ID] = 0
	}
	for _, c := range g.Connections {
		inDegree[c.TargetID]++
	}

	var current []string
	for _, n := range g.Nodes {
		if inDegree[n.ID] == 0 {
			current = append(current, n.ID)
		}
	}

	placed := make(map[string]bool, len(g.Nodes))
	var levels [][]string
	for len(current) > 0 {
		level := make([]string, 0, len(current))
		var next []string
		for _, id := range current {
			if placed[id] {
				continue
			}
			placed[id] = true
			level = append(level, id)
			for _, succ := range adj[id] {
				inDegree[succ]--
				if inDegree[succ] == 0 {
					next = append(next, succ)
				}
			}
		}
		if len(level) > 0 {
			levels = append(levels, level)
		}
		current = next
	}

	var rest []string
	for _, n := range g.Nodes {
		if !placed[n.ID] {
			rest = append(rest, n.ID)
		}
	}
	if len(rest) > 0 {
		levels = append(levels, rest)
	}
	return levels
}
