package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFanOut_None(t *testing.T) {
	t.Parallel()

	fo := ClassifyFanOut(nil)
	assert.Equal(t, FanOutNone, fo.Kind)
}

func TestClassifyFanOut_Single(t *testing.T) {
	t.Parallel()

	fo := ClassifyFanOut([]Connection{{ID: "c0", SourceID: "a", TargetID: "b"}})
	assert.Equal(t, FanOutSingle, fo.Kind)
	assert.Equal(t, "b", fo.Next)
}

func TestClassifyFanOut_Parallel(t *testing.T) {
	t.Parallel()

	fo := ClassifyFanOut([]Connection{
		{ID: "c0", SourceID: "a", TargetID: "b"},
		{ID: "c1", SourceID: "a", TargetID: "c"},
		{ID: "c2", SourceID: "a", TargetID: "d"},
	})
	assert.Equal(t, FanOutParallel, fo.Kind)
	assert.Equal(t, []string{"b", "c", "d"}, fo.Parallel)
}

func TestClassifyFanOut_AnyConditionWins(t *testing.T) {
	t.Parallel()

	// Mixed conditional/unconditional siblings: the whole fan-out is
	// conditional, the unlabeled edge becoming the default branch.
	fo := ClassifyFanOut([]Connection{
		{ID: "c0", SourceID: "a", TargetID: "b", Condition: "yes"},
		{ID: "c1", SourceID: "a", TargetID: "c"},
	})
	require.Equal(t, FanOutConditional, fo.Kind)
	require.Len(t, fo.Branches, 2)
	assert.Equal(t, Branch{Condition: "yes", TargetID: "b"}, fo.Branches[0])
	assert.Equal(t, Branch{Condition: "", TargetID: "c"}, fo.Branches[1])
}

func TestClassifyFanOut_SingleConditionalEdge(t *testing.T) {
	t.Parallel()

	fo := ClassifyFanOut([]Connection{{ID: "c0", SourceID: "a", TargetID: "b", Condition: "retry"}})
	require.Equal(t, FanOutConditional, fo.Kind)
	assert.Equal(t, []Branch{{Condition: "retry", TargetID: "b"}}, fo.Branches)
}

func TestFanOutOf_UsesDeclarationOrder(t *testing.T) {
	t.Parallel()

	g := graphOf([]string{"a", "b", "c"}, [][2]string{{"a", "c"}, {"a", "b"}})
	fo := FanOutOf(g, "a")
	require.Equal(t, FanOutParallel, fo.Kind)
	assert.Equal(t, []string{"c", "b"}, fo.Parallel)

	assert.Equal(t, FanOutNone, FanOutOf(g, "b").Kind)
}
