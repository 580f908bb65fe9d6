// Package algorithms implements the analyses run over a word graph: bridge
// words, bridge-word text expansion, weighted shortest paths, PageRank and
// the self-terminating random walk.
//
// Every function takes the graph read-only. Functions that need randomness
// take a caller-owned *rand.Rand so a single seeded source can be threaded
// through a whole session.
package algorithms

import (
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// MembershipPolicy decides which words count as "in the graph" for the
// endpoint checks of bridge-word and shortest-path queries.
type MembershipPolicy int

const (
	// MembershipAllVertices accepts sources and edge targets.
	MembershipAllVertices MembershipPolicy = iota
	// MembershipSourcesOnly accepts only words with outgoing edges. A word
	// that only ever ends the text is then reported as missing.
	MembershipSourcesOnly
)

// String returns the config name of the policy
func (p MembershipPolicy) String() string {
	if p == MembershipSourcesOnly {
		return "sources"
	}
	return "all"
}

// ParseMembershipPolicy maps "sources" to MembershipSourcesOnly and
// anything else to MembershipAllVertices.
func ParseMembershipPolicy(s string) MembershipPolicy {
	if s == "sources" {
		return MembershipSourcesOnly
	}
	return MembershipAllVertices
}

// Contains reports whether word is in g under the policy.
func (p MembershipPolicy) Contains(g *graph.Graph, word string) bool {
	if p == MembershipSourcesOnly {
		return g.HasSource(word)
	}
	return g.HasVertex(word)
}
