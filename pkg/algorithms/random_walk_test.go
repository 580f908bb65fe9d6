package algorithms

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

func TestRandomWalkFrom_Scenario(t *testing.T) {
	g := scenarioGraph(t)

	for seed := uint64(0); seed < 32; seed++ {
		w, err := RandomWalkFrom(g, "c", seeded(seed), WalkOptions{})
		if err != nil {
			t.Fatalf("RandomWalkFrom failed: %v", err)
		}

		if len(w.Vertices) < 3 || !equalStrings(w.Vertices[:3], []string{"c", "a", "b"}) {
			t.Fatalf("seed %d: walk %v does not begin c a b", seed, w.Vertices)
		}

		switch w.Text() {
		case "c a b d":
			if w.Stop != WalkDeadEnd {
				t.Errorf("seed %d: Stop = %v, want dead_end", seed, w.Stop)
			}
		case "c a b c":
			if w.Stop != WalkRepeatedEdge {
				t.Errorf("seed %d: Stop = %v, want repeated_edge", seed, w.Stop)
			}
		default:
			t.Errorf("seed %d: unexpected walk %q", seed, w.Text())
		}
	}
}

func TestRandomWalkFrom_IncludeRepeatedTarget(t *testing.T) {
	g := graph.BuildFromText("a a")

	w, err := RandomWalkFrom(g, "a", seeded(1), WalkOptions{})
	if err != nil {
		t.Fatalf("RandomWalkFrom failed: %v", err)
	}
	if w.Text() != "a a" {
		t.Errorf("default walk = %q, want %q", w.Text(), "a a")
	}

	w, _ = RandomWalkFrom(g, "a", seeded(1), WalkOptions{IncludeRepeatedTarget: true})
	if w.Text() != "a a a" {
		t.Errorf("walk with repeated target = %q, want %q", w.Text(), "a a a")
	}
	if len(w.Edges) != 2 {
		t.Errorf("Edges = %d, want 2", len(w.Edges))
	}
}

func TestRandomWalk_EmptyGraph(t *testing.T) {
	for _, g := range []*graph.Graph{graph.New(), graph.BuildFromText("lonely")} {
		_, err := RandomWalk(g, seeded(1), WalkOptions{})
		if !errors.Is(err, graph.ErrEmptyGraph) {
			t.Errorf("err = %v, want ErrEmptyGraph", err)
		}
	}
}

func TestRandomWalkFrom_Missing(t *testing.T) {
	_, err := RandomWalkFrom(scenarioGraph(t), "zebra", seeded(1), WalkOptions{})
	if !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("err = %v, want ErrVertexNotFound", err)
	}
}

func TestRandomWalk_StartsAtSource(t *testing.T) {
	g := scenarioGraph(t)

	for seed := uint64(0); seed < 32; seed++ {
		w, err := RandomWalk(g, seeded(seed), WalkOptions{})
		if err != nil {
			t.Fatalf("RandomWalk failed: %v", err)
		}
		if !g.HasSource(w.Vertices[0]) {
			t.Errorf("seed %d: walk starts at %q which has no outgoing edges", seed, w.Vertices[0])
		}
	}
}

func TestRandomWalk_SameSeedSameWalk(t *testing.T) {
	g := graph.BuildFromText("the quick brown fox jumps over the lazy dog the quick cat")

	a, _ := RandomWalk(g, seeded(7), WalkOptions{})
	b, _ := RandomWalk(g, seeded(7), WalkOptions{})
	if a.Text() != b.Text() {
		t.Errorf("same seed gave %q and %q", a.Text(), b.Text())
	}
}
