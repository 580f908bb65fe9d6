package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/query"
)

func testSchemaEngine(t *testing.T, text string) *query.Engine {
	t.Helper()
	opts := query.DefaultOptions()
	opts.Seed = 1
	return query.NewEngine(graph.BuildFromText(text), opts)
}

func execute(t *testing.T, engine *query.Engine, q string) map[string]any {
	t.Helper()
	schema, err := GenerateSchema(engine)
	require.NoError(t, err)

	result := ExecuteQuery(q, schema)
	require.False(t, result.HasErrors(), "query errors: %v", result.Errors)
	return result.Data.(map[string]any)
}

func TestSchema_Stats(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{ health stats { vertices sources edges totalWeight tokens } }`)

	assert.Equal(t, "ok", data["health"])
	stats := data["stats"].(map[string]any)
	assert.Equal(t, 4, stats["vertices"])
	assert.Equal(t, 3, stats["sources"])
	assert.Equal(t, 4, stats["edges"])
	assert.Equal(t, 5, stats["totalWeight"])
	assert.Equal(t, 6, stats["tokens"])
}

func TestSchema_VerticesAndEdges(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{
		all: vertices
		sources: vertices(sourcesOnly: true)
		edges(from: "b") { from to weight }
	}`)

	assert.Equal(t, []any{"a", "b", "c", "d"}, data["all"])
	assert.Equal(t, []any{"a", "b", "c"}, data["sources"])

	edges := data["edges"].([]any)
	require.Len(t, edges, 2)
	assert.Equal(t, map[string]any{"from": "b", "to": "c", "weight": 1}, edges[0])
	assert.Equal(t, map[string]any{"from": "b", "to": "d", "weight": 1}, edges[1])
}

func TestSchema_BridgeWords(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{
		found: bridgeWords(from: "a", to: "c") { kind words message }
		none: bridgeWords(from: "c", to: "d") { kind message }
		missing: bridgeWords(from: "x", to: "d") { kind message }
	}`)

	found := data["found"].(map[string]any)
	assert.Equal(t, "FOUND", found["kind"])
	assert.Equal(t, []any{"b"}, found["words"])
	assert.Equal(t, "The bridge words from a to c are: b.", found["message"])

	assert.Equal(t, "NONE", data["none"].(map[string]any)["kind"])
	assert.Equal(t, "No x or d in the graph!", data["missing"].(map[string]any)["message"])
}

func TestSchema_GenerateText(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{ generateText(text: "a c") { text insertions { after bridge before } } }`)

	gen := data["generateText"].(map[string]any)
	assert.Equal(t, "a b c", gen["text"])
	assert.Equal(t, []any{map[string]any{"after": "a", "bridge": "b", "before": "c"}}, gen["insertions"])
}

func TestSchema_ShortestPath(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{
		ok: shortestPath(from: "a", to: "d") { found path length message }
		none: shortestPath(from: "d", to: "a") { found length message }
		all: shortestPaths(from: "c") { to length }
	}`)

	ok := data["ok"].(map[string]any)
	assert.Equal(t, true, ok["found"])
	assert.Equal(t, []any{"a", "b", "d"}, ok["path"])
	assert.Equal(t, 3, ok["length"])
	assert.Equal(t, "Shortest path: a → b → d (length: 3)", ok["message"])

	none := data["none"].(map[string]any)
	assert.Equal(t, false, none["found"])
	assert.Nil(t, none["length"])

	assert.Len(t, data["all"].([]any), 3)
}

func TestSchema_PageRank(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "x y"), `{
		pageRank(word: "y")
		pageRanks { word score }
		top: pageRanks(top: 1) { word }
	}`)

	assert.InDelta(t, 0.2775, data["pageRank"], 1e-9)

	ranks := data["pageRanks"].([]any)
	require.Len(t, ranks, 2)
	assert.Equal(t, "x", ranks[0].(map[string]any)["word"])

	top := data["top"].([]any)
	require.Len(t, top, 1)
	assert.Equal(t, "y", top[0].(map[string]any)["word"])
}

func TestSchema_RandomWalk(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{ randomWalk(start: "c") { vertices text stop edges { from to } } }`)

	walk := data["randomWalk"].(map[string]any)
	vertices := walk["vertices"].([]any)
	require.GreaterOrEqual(t, len(vertices), 3)
	assert.Equal(t, []any{"c", "a", "b"}, vertices[:3])
	assert.Len(t, walk["edges"].([]any), len(vertices)-1)
}

func TestSchema_Errors(t *testing.T) {
	schema, err := GenerateSchema(testSchemaEngine(t, "a b"))
	require.NoError(t, err)

	result := ExecuteQuery(`{ randomWalk(start: "zebra") { text } }`, schema)
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "word not in graph")

	data := execute(t, testSchemaEngine(t, "a b"), `{ pageRank(word: "zebra") }`)
	assert.Equal(t, 0.0, data["pageRank"])

	result = ExecuteQuery(`{ nope }`, schema)
	assert.True(t, result.HasErrors())
}

func TestSchema_EmptyGraphWalk(t *testing.T) {
	schema, err := GenerateSchema(testSchemaEngine(t, ""))
	require.NoError(t, err)

	result := ExecuteQuery(`{ randomWalk { text } }`, schema)
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "graph is empty")
}

func TestSchema_Components(t *testing.T) {
	data := execute(t, testSchemaEngine(t, "a b c a b d"), `{ components { id words size } }`)

	components := data["components"].([]any)
	require.Len(t, components, 2)
	assert.Equal(t, map[string]any{"id": 0, "words": []any{"a", "b", "c"}, "size": 3}, components[0])
	assert.Equal(t, map[string]any{"id": 1, "words": []any{"d"}, "size": 1}, components[1])
}
