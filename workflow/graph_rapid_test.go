package workflow

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// Disconnection is a local degree check: a node is reported exactly when no
// connection touches it, regardless of reachability from any entry.
func TestRapid_DisconnectedNodesAreZeroDegree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(t, "n")
		g := &Graph{ID: "r", Name: "r"}
		for i := 0; i < n; i++ {
			g.Nodes = append(g.Nodes, Node{ID: fmt.Sprintf("n%d", i), Kind: NodeKindEnd})
		}

		edgeCount := rapid.IntRange(0, 2*n).Draw(t, "edges")
		for i := 0; i < edgeCount; i++ {
			u := rapid.IntRange(0, n-1).Draw(t, "u")
			v := rapid.IntRange(0, n-1).Draw(t, "v")
			g.Connections = append(g.Connections, Connection{
				ID:       fmt.Sprintf("c%d", i),
				SourceID: fmt.Sprintf("n%d", u),
				TargetID: fmt.Sprintf("n%d", v),
			})
		}

		degree := make(map[string]int, n)
		for _, c := range g.Connections {
			degree[c.SourceID]++
			degree[c.TargetID]++
		}

		var want []string
		for _, node := range g.Nodes {
			if degree[node.ID] == 0 {
				want = append(want, node.ID)
			}
		}

		got := DisconnectedNodes(g)
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
			}
		}
	})
}

// Analysis functions must treat the graph as read-only.
func TestRapid_AnalysisDoesNotMutateGraph(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		g := &Graph{ID: "r", Name: "r"}
		for i := 0; i < n; i++ {
			g.Nodes = append(g.Nodes, Node{ID: fmt.Sprintf("n%d", i), Kind: NodeKindEnd})
		}
		for i := 0; i+1 < n; i++ {
			g.Connections = append(g.Connections, Connection{
				ID:       fmt.Sprintf("c%d", i),
				SourceID: fmt.Sprintf("n%d", i),
				TargetID: fmt.Sprintf("n%d", i+1),
			})
		}

		before, err := g.ToJSON()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		HasCycle(g)
		TopologicalOrder(g)
		DisconnectedNodes(g)
		Levels(g)

		after, err := g.ToJSON()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if before != after {
			t.Fatalf("analysis mutated the graph:\nbefore: %s\nafter: %s", before, after)
		}
	})
}
