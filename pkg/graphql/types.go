package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-textgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"vertices":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"sources":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"edges":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalWeight": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"tokens":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var edgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Edge",
	Fields: graphql.Fields{
		"from":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"to":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"weight": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var bridgeKindEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "BridgeKind",
	Values: graphql.EnumValueConfigMap{
		"MISSING_WORD": &graphql.EnumValueConfig{Value: "MISSING_WORD"},
		"NONE":         &graphql.EnumValueConfig{Value: "NONE"},
		"FOUND":        &graphql.EnumValueConfig{Value: "FOUND"},
	},
})

var bridgeResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BridgeResult",
	Fields: graphql.Fields{
		"kind":    &graphql.Field{Type: graphql.NewNonNull(bridgeKindEnum)},
		"from":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"to":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"words":   &graphql.Field{Type: graphql.NewList(graphql.String)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var insertionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Insertion",
	Fields: graphql.Fields{
		"after":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"bridge": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"before": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var generateResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "GeneratedText",
	Fields: graphql.Fields{
		"text":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"insertions": &graphql.Field{Type: graphql.NewList(insertionType)},
	},
})

var pathResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PathResult",
	Fields: graphql.Fields{
		"from":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"to":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"found":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"path":    &graphql.Field{Type: graphql.NewList(graphql.String)},
		"length":  &graphql.Field{Type: graphql.Int},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var rankedWordType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RankedWord",
	Fields: graphql.Fields{
		"word":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"score": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var walkType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Walk",
	Fields: graphql.Fields{
		"vertices": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"edges":    &graphql.Field{Type: graphql.NewList(edgeType)},
		"text":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stop":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var componentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Component",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"words": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"size":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

func statsToMap(s graph.Statistics) map[string]any {
	return map[string]any{
		"vertices":    s.Vertices,
		"sources":     s.Sources,
		"edges":       s.Edges,
		"totalWeight": s.TotalWeight,
		"tokens":      s.Tokens,
	}
}

func edgesToMaps(edges []graph.Edge) []map[string]any {
	out := make([]map[string]any, len(edges))
	for i, e := range edges {
		out[i] = map[string]any{"from": e.From, "to": e.To, "weight": e.Weight}
	}
	return out
}

func bridgeToMap(r algorithms.BridgeResult) map[string]any {
	kind := "FOUND"
	switch r.Kind {
	case algorithms.BridgeMissingWord:
		kind = "MISSING_WORD"
	case algorithms.BridgeNone:
		kind = "NONE"
	}
	return map[string]any{
		"kind":    kind,
		"from":    r.From,
		"to":      r.To,
		"words":   r.Words,
		"message": r.String(),
	}
}

func generateToMap(r algorithms.GenerateResult) map[string]any {
	insertions := make([]map[string]any, len(r.Insertions))
	for i, ins := range r.Insertions {
		insertions[i] = map[string]any{"after": ins.After, "bridge": ins.Bridge, "before": ins.Before}
	}
	return map[string]any{"text": r.Text, "insertions": insertions}
}

func pathToMap(r algorithms.PathResult) map[string]any {
	m := map[string]any{
		"from":    r.From,
		"to":      r.To,
		"found":   r.Found(),
		"path":    r.Path,
		"message": r.String(),
	}
	if r.Found() {
		m["length"] = r.Length
	}
	return m
}

func rankedToMaps(ranked []algorithms.RankedWord) []map[string]any {
	out := make([]map[string]any, len(ranked))
	for i, rw := range ranked {
		out[i] = map[string]any{"word": rw.Word, "score": rw.Score}
	}
	return out
}

func walkToMap(w algorithms.WalkResult) map[string]any {
	return map[string]any{
		"vertices": w.Vertices,
		"edges":    edgesToMaps(w.Edges),
		"text":     w.Text(),
		"stop":     w.Stop.String(),
	}
}

func componentsToMaps(r *algorithms.SCCResult) []map[string]any {
	out := make([]map[string]any, len(r.Components))
	for i, c := range r.Components {
		out[i] = map[string]any{"id": c.ID, "words": c.Words, "size": len(c.Words)}
	}
	return out
}
