package graph

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genTokens draws token sequences from a small alphabet so pairs repeat.
func genTokens() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf("a", "b", "c", "d", "e"), reflect.TypeOf(""))
}

func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("edge weight equals adjacent pair count", prop.ForAll(
		func(tokens []string) bool {
			g := Build(tokens)

			counts := make(map[[2]string]int)
			for i := 0; i+1 < len(tokens); i++ {
				counts[[2]string{tokens[i], tokens[i+1]}]++
			}
			if len(counts) != len(g.Edges()) {
				return false
			}
			for _, e := range g.Edges() {
				if e.Weight < 1 || counts[[2]string{e.From, e.To}] != e.Weight {
					return false
				}
			}
			return true
		},
		genTokens(),
	))

	properties.Property("total weight is token count minus one", prop.ForAll(
		func(tokens []string) bool {
			g := Build(tokens)
			if len(tokens) < 2 {
				return g.Stats().TotalWeight == 0
			}
			return g.Stats().TotalWeight == len(tokens)-1
		},
		genTokens(),
	))

	properties.Property("every token of a multi-token input is a vertex", prop.ForAll(
		func(tokens []string) bool {
			if len(tokens) < 2 {
				return true
			}
			g := Build(tokens)
			for _, tok := range tokens {
				if !g.HasVertex(tok) {
					return false
				}
			}
			return true
		},
		genTokens(),
	))

	properties.TestingRun(t)
}
