package algorithms

import (
	"math/rand/v2"
	"testing"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// scenarioGraph builds "a b c a b d": (a,b)=2 (b,c)=1 (c,a)=1 (b,d)=1.
func scenarioGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return graph.BuildFromText("a b c a b d")
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
