// Package visualization writes word graphs as Graphviz DOT and rasterizes
// them with an external layout command.
package visualization

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// WriteDOT writes g as a directed graph, one labelled edge per line, in
// (source, target) order.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("digraph G {\n"); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "  \"%s\" -> \"%s\" [label=\"%d\"];\n",
			dotEscaper.Replace(e.From), dotEscaper.Replace(e.To), e.Weight); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// GenerateDOT returns the DOT text for g.
func GenerateDOT(g *graph.Graph) string {
	var sb strings.Builder
	_ = WriteDOT(&sb, g)
	return sb.String()
}

// SaveDOT writes the DOT text for g to path, replacing any existing file.
func SaveDOT(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close dot file: %w", cerr)
		}
	}()

	if err := WriteDOT(f, g); err != nil {
		return fmt.Errorf("write dot file: %w", err)
	}
	return nil
}

// EdgeLines renders every edge as "src → dst (weight: n)".
func EdgeLines(g *graph.Graph) []string {
	edges := g.Edges()
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = fmt.Sprintf("%s → %s (weight: %d)", e.From, e.To, e.Weight)
	}
	return lines
}
