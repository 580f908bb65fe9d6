package algorithms

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

func TestShortestPath_Scenario(t *testing.T) {
	g := scenarioGraph(t)

	got := ShortestPath(g, "a", "d", MembershipAllVertices)
	if !got.Found() {
		t.Fatalf("expected path a -> d, got %+v", got)
	}
	if !equalStrings(got.Path, []string{"a", "b", "d"}) {
		t.Errorf("Path = %v, want [a b d]", got.Path)
	}
	// (a,b)=2 plus (b,d)=1
	if got.Length != 3 {
		t.Errorf("Length = %d, want 3", got.Length)
	}
	if want := "Shortest path: a → b → d (length: 3)"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := scenarioGraph(t)

	got := ShortestPath(g, "d", "a", MembershipAllVertices)
	if got.Reason != PathUnreachable {
		t.Fatalf("Reason = %v, want PathUnreachable", got.Reason)
	}
	if want := "No path from d to a!"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}

func TestShortestPath_MissingWord(t *testing.T) {
	g := scenarioGraph(t)

	got := ShortestPath(g, "a", "zebra", MembershipAllVertices)
	if got.Reason != PathMissingWord {
		t.Fatalf("Reason = %v, want PathMissingWord", got.Reason)
	}
	if want := "No path: a or zebra not in graph!"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}

	if got := ShortestPath(g, "a", "d", MembershipSourcesOnly); got.Reason != PathMissingWord {
		t.Errorf("sources-only policy should reject sink d, got %v", got.Reason)
	}
}

func TestShortestPath_SameWord(t *testing.T) {
	g := scenarioGraph(t)

	got := ShortestPath(g, "b", "b", MembershipAllVertices)
	if !got.Found() || got.Length != 0 || !equalStrings(got.Path, []string{"b"}) {
		t.Errorf("got %+v, want zero-length path [b]", got)
	}
}

func TestShortestPath_PrefersLighterRoute(t *testing.T) {
	// a->b weighs 3 but a->c->b weighs 2.
	g := graph.BuildFromText("a b a b a b a c b")

	got := ShortestPath(g, "a", "b", MembershipAllVertices)
	if !equalStrings(got.Path, []string{"a", "c", "b"}) || got.Length != 2 {
		t.Errorf("got %v length %d, want [a c b] length 2", got.Path, got.Length)
	}
}

func TestShortestPath_TieIsDeterministic(t *testing.T) {
	// a->p->z and a->q->z both weigh 2.
	g := graph.BuildFromText("a q z a p z")

	for i := 0; i < 10; i++ {
		got := ShortestPath(g, "a", "z", MembershipAllVertices)
		if !equalStrings(got.Path, []string{"a", "p", "z"}) {
			t.Fatalf("run %d: Path = %v, want [a p z]", i, got.Path)
		}
	}
}

func TestShortestPathsFrom(t *testing.T) {
	g := scenarioGraph(t)

	paths, err := ShortestPathsFrom(g, "c", MembershipAllVertices)
	if err != nil {
		t.Fatalf("ShortestPathsFrom failed: %v", err)
	}

	want := map[string]int{"a": 1, "b": 3, "d": 4}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d", len(paths), len(want))
	}
	for _, p := range paths {
		if p.Length != want[p.To] {
			t.Errorf("c -> %s length = %d, want %d", p.To, p.Length, want[p.To])
		}
		if p.Path[0] != "c" || p.Path[len(p.Path)-1] != p.To {
			t.Errorf("c -> %s path = %v", p.To, p.Path)
		}
	}
	if paths[0].To != "a" || paths[2].To != "d" {
		t.Errorf("paths not ordered by target: %v %v %v", paths[0].To, paths[1].To, paths[2].To)
	}
}

func TestShortestPathsFrom_MissingSource(t *testing.T) {
	g := scenarioGraph(t)

	_, err := ShortestPathsFrom(g, "zebra", MembershipAllVertices)
	if !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("err = %v, want ErrVertexNotFound", err)
	}
}

func TestShortestPathsFrom_Sink(t *testing.T) {
	g := scenarioGraph(t)

	paths, err := ShortestPathsFrom(g, "d", MembershipAllVertices)
	if err != nil {
		t.Fatalf("ShortestPathsFrom failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("sink d should reach nothing, got %d paths", len(paths))
	}
}
