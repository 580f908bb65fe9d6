package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

func TestSCC_Scenario(t *testing.T) {
	g := scenarioGraph(t)

	result := StronglyConnectedComponents(g)

	// a -> b -> c -> a is a cycle; d is a sink.
	if len(result.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(result.Components))
	}
	if !equalStrings(result.Largest().Words, []string{"a", "b", "c"}) {
		t.Errorf("largest = %v, want [a b c]", result.Largest().Words)
	}
	if result.SingletonCount != 1 {
		t.Errorf("SingletonCount = %d, want 1", result.SingletonCount)
	}
	if result.ComponentOf["a"] != result.ComponentOf["c"] || result.ComponentOf["a"] == result.ComponentOf["d"] {
		t.Errorf("ComponentOf = %v", result.ComponentOf)
	}
}

func TestSCC_Empty(t *testing.T) {
	result := StronglyConnectedComponents(graph.New())
	if len(result.Components) != 0 || result.Largest() != nil {
		t.Errorf("expected no components, got %+v", result.Components)
	}
}

func TestSCC_Chain(t *testing.T) {
	g := graph.BuildFromText("the quick brown fox")

	result := StronglyConnectedComponents(g)
	if len(result.Components) != 4 || result.SingletonCount != 4 {
		t.Errorf("chain should give 4 singletons, got %d components", len(result.Components))
	}

	// Ties on size order by first word.
	want := []string{"brown", "fox", "quick", "the"}
	for i, c := range result.Components {
		if c.Words[0] != want[i] {
			t.Errorf("component %d = %v, want %s", i, c.Words, want[i])
		}
	}
}

func TestCondensation(t *testing.T) {
	g := scenarioGraph(t)
	scc := StronglyConnectedComponents(g)

	edges := Condensation(g, scc)
	if len(edges) != 1 {
		t.Fatalf("got %d condensation edges, want 1", len(edges))
	}
	if edges[0].From != scc.ComponentOf["b"] || edges[0].To != scc.ComponentOf["d"] || edges[0].Weight != 1 {
		t.Errorf("edge = %+v", edges[0])
	}
}
