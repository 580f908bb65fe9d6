package graph

import (
	"github.com/dd0wney/cluso-textgraph/pkg/logging"
	"github.com/dd0wney/cluso-textgraph/pkg/tokenizer"
)

// Build inserts one edge increment per adjacent token pair. The last token
// contributes no outgoing edge, so a single-token input yields an empty graph.
func Build(tokens []string) *Graph {
	g := New()
	g.tokens = len(tokens)
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == "" || tokens[i+1] == "" {
			continue
		}
		g.AddEdge(tokens[i], tokens[i+1])
	}
	return g
}

// BuildFromText tokenizes text and builds its graph.
func BuildFromText(text string) *Graph {
	return Build(tokenizer.Tokenize(text))
}

// BuildFromFile reads and tokenizes path, then builds the graph. The file is
// closed before the graph is assembled.
func BuildFromFile(path string) (*Graph, error) {
	tokens, err := tokenizer.TokenizeFile(path)
	if err != nil {
		logging.Warn("read input failed", logging.Path(path), logging.Error(err))
		return nil, InputError(path, err)
	}
	return Build(tokens), nil
}
