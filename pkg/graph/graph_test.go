package graph

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-textgraph/pkg/logging"
)

func TestBuild_QuickBrownFox(t *testing.T) {
	g := BuildFromText("the quick brown fox jumps over the lazy dog")

	w, ok := g.Weight("the", "quick")
	require.True(t, ok)
	assert.Equal(t, 1, w)

	w, ok = g.Weight("the", "lazy")
	require.True(t, ok)
	assert.Equal(t, 1, w)

	assert.Equal(t, 2, g.OutDegree("the"))
	assert.False(t, g.HasSource("dog"))
	assert.True(t, g.HasVertex("dog"))
}

func TestBuild_RepeatedPairs(t *testing.T) {
	g := BuildFromText("a b c a b d")

	want := []Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "b", To: "c", Weight: 1},
		{From: "b", To: "d", Weight: 1},
		{From: "c", To: "a", Weight: 1},
	}
	assert.Equal(t, want, g.Edges())

	stats := g.Stats()
	assert.Equal(t, Statistics{Vertices: 4, Sources: 3, Edges: 4, TotalWeight: 5, Tokens: 6}, stats)
}

func TestBuild_SelfLoop(t *testing.T) {
	g := BuildFromText("very very very good")

	w, ok := g.Weight("very", "very")
	require.True(t, ok)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, g.OutDegree("very"))
}

func TestBuild_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"nil", nil},
		{"single token", []string{"alone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.tokens)
			assert.True(t, g.IsEmpty())
			assert.Empty(t, g.Vertices())
			assert.Empty(t, g.Edges())
			assert.False(t, g.HasVertex("alone"))
		})
	}
}

func TestOutEdges_MissingSource(t *testing.T) {
	g := BuildFromText("a b")

	out := g.OutEdges("b")
	require.NotNil(t, out)
	assert.Empty(t, out)

	out = g.OutEdges("zzz")
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestVerticesAndSources(t *testing.T) {
	g := BuildFromText("x y z x")

	assert.Equal(t, []string{"x", "y", "z"}, g.Vertices())
	assert.Equal(t, []string{"x", "y", "z"}, g.Sources())

	g = BuildFromText("x y")
	assert.Equal(t, []string{"x", "y"}, g.Vertices())
	assert.Equal(t, []string{"x"}, g.Sources())
	assert.Equal(t, []string{"y"}, g.Successors("x"))
	assert.Empty(t, g.Successors("y"))
}

func TestHasEdge(t *testing.T) {
	g := BuildFromText("a b c")
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
	assert.False(t, g.HasEdge("q", "a"))
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("New worlds.\nNew life, new civilizations!"), 0o644))

	g, err := BuildFromFile(path)
	require.NoError(t, err)

	w, _ := g.Weight("new", "worlds")
	assert.Equal(t, 1, w)
	w, _ = g.Weight("worlds", "new")
	assert.Equal(t, 1, w, "line boundary behaves like a space")
	w, _ = g.Weight("life", "new")
	assert.Equal(t, 1, w)
}

func TestBuildFromFile_Missing(t *testing.T) {
	_, err := BuildFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrInputRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var ge *GraphError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "read", ge.Op)
}

func TestBuildFromFile_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logging.SetDefaultLogger(logging.NewJSONLogger(&buf, logging.WarnLevel))
	t.Cleanup(func() { logging.SetDefaultLogger(nil) })

	_, err := BuildFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"msg":"read input failed"`)
	assert.Contains(t, out, "missing.txt")
}
