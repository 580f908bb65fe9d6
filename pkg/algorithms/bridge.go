package algorithms

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// BridgeKind tags the three possible outcomes of a bridge-word query.
type BridgeKind int

const (
	// BridgeMissingWord means one of the two words is not in the graph.
	BridgeMissingWord BridgeKind = iota
	// BridgeNone means both words exist but nothing links them.
	BridgeNone
	// BridgeFound means at least one bridge word exists.
	BridgeFound
)

// BridgeResult is the structured answer to a bridge-word query.
type BridgeResult struct {
	Kind  BridgeKind
	From  string
	To    string
	Words []string // sorted; empty unless Kind == BridgeFound
}

// String renders the result in its user-facing form.
func (r BridgeResult) String() string {
	switch r.Kind {
	case BridgeMissingWord:
		return fmt.Sprintf("No %s or %s in the graph!", r.From, r.To)
	case BridgeNone:
		return fmt.Sprintf("No bridge words from %s to %s!", r.From, r.To)
	default:
		return fmt.Sprintf("The bridge words from %s to %s are: %s.", r.From, r.To, strings.Join(r.Words, ", "))
	}
}

// BridgeWords returns every w3 such that (from, w3) and (w3, to) are edges.
func BridgeWords(g *graph.Graph, from, to string, policy MembershipPolicy) BridgeResult {
	result := BridgeResult{From: from, To: to}
	if !policy.Contains(g, from) || !policy.Contains(g, to) {
		result.Kind = BridgeMissingWord
		return result
	}

	for _, mid := range g.Successors(from) {
		if g.HasEdge(mid, to) {
			result.Words = append(result.Words, mid)
		}
	}

	if len(result.Words) == 0 {
		result.Kind = BridgeNone
	} else {
		result.Kind = BridgeFound
	}
	return result
}
