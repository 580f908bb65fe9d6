package algorithms

import (
	"math/rand/v2"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/tokenizer"
)

// Insertion records a bridge word placed between two input words.
type Insertion struct {
	After  string
	Bridge string
	Before string
}

// GenerateResult is the expanded text plus the choices made.
type GenerateResult struct {
	Text       string
	Insertions []Insertion
}

// GenerateText normalizes input, then inserts one uniformly chosen bridge
// word between every adjacent pair that has any.
func GenerateText(g *graph.Graph, input string, rng *rand.Rand, policy MembershipPolicy) GenerateResult {
	words := tokenizer.Tokenize(input)
	if len(words) == 0 {
		return GenerateResult{}
	}

	out := make([]string, 0, 2*len(words)-1)
	var inserted []Insertion
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i])

		bridges := BridgeWords(g, words[i], words[i+1], policy)
		if bridges.Kind != BridgeFound {
			continue
		}
		pick := bridges.Words[rng.IntN(len(bridges.Words))]
		out = append(out, pick)
		inserted = append(inserted, Insertion{After: words[i], Bridge: pick, Before: words[i+1]})
	}
	out = append(out, words[len(words)-1])

	return GenerateResult{
		Text:       strings.Join(out, " "),
		Insertions: inserted,
	}
}
