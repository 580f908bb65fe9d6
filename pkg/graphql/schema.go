// Package graphql exposes a query Engine as a read-only GraphQL schema.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/query"
)

// GenerateSchema builds the schema over engine. Every field resolves
// through the engine so queries are logged and counted like menu actions.
func GenerateSchema(engine *query.Engine) (graphql.Schema, error) {
	wordArg := func() *graphql.ArgumentConfig {
		return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"stats": &graphql.Field{
				Type: graphql.NewNonNull(statsType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return statsToMap(engine.Graph().Stats()), nil
				},
			},
			"vertices": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: graphql.FieldConfigArgument{
					"sourcesOnly": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					if sourcesOnly, _ := p.Args["sourcesOnly"].(bool); sourcesOnly {
						return engine.Graph().Sources(), nil
					}
					return engine.Graph().Vertices(), nil
				},
			},
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Args: graphql.FieldConfigArgument{
					"from": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					edges := engine.Graph().Edges()
					from, ok := p.Args["from"].(string)
					if !ok {
						return edgesToMaps(edges), nil
					}
					filtered := make([]graph.Edge, 0, len(edges))
					for _, e := range edges {
						if e.From == from {
							filtered = append(filtered, e)
						}
					}
					return edgesToMaps(filtered), nil
				},
			},
			"bridgeWords": &graphql.Field{
				Type: graphql.NewNonNull(bridgeResultType),
				Args: graphql.FieldConfigArgument{"from": wordArg(), "to": wordArg()},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					from, to := p.Args["from"].(string), p.Args["to"].(string)
					return bridgeToMap(engine.BridgeWords(from, to)), nil
				},
			},
			"generateText": &graphql.Field{
				Type: graphql.NewNonNull(generateResultType),
				Args: graphql.FieldConfigArgument{"text": wordArg()},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return generateToMap(engine.GenerateText(p.Args["text"].(string))), nil
				},
			},
			"shortestPath": &graphql.Field{
				Type: graphql.NewNonNull(pathResultType),
				Args: graphql.FieldConfigArgument{"from": wordArg(), "to": wordArg()},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					from, to := p.Args["from"].(string), p.Args["to"].(string)
					return pathToMap(engine.ShortestPath(from, to)), nil
				},
			},
			"shortestPaths": &graphql.Field{
				Type: graphql.NewList(pathResultType),
				Args: graphql.FieldConfigArgument{"from": wordArg()},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					paths, err := engine.ShortestPathsFrom(p.Args["from"].(string))
					if err != nil {
						return nil, err
					}
					out := make([]map[string]any, len(paths))
					for i, path := range paths {
						out[i] = pathToMap(path)
					}
					return out, nil
				},
			},
			"pageRank": &graphql.Field{
				Type: graphql.Float,
				Args: graphql.FieldConfigArgument{"word": wordArg()},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return engine.PageRankOf(p.Args["word"].(string))
				},
			},
			"pageRanks": &graphql.Field{
				Type: graphql.NewList(rankedWordType),
				Args: graphql.FieldConfigArgument{
					"top": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					result, err := engine.PageRank()
					if err != nil {
						return nil, err
					}
					if top, ok := p.Args["top"].(int); ok {
						return rankedToMaps(result.Top(top)), nil
					}
					return rankedToMaps(result.Ranked()), nil
				},
			},
			"components": &graphql.Field{
				Type: graphql.NewList(componentType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return componentsToMaps(engine.Components()), nil
				},
			},
			"randomWalk": &graphql.Field{
				Type: walkType,
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					if start, ok := p.Args["start"].(string); ok {
						w, err := engine.RandomWalkFrom(start)
						if err != nil {
							return nil, err
						}
						return walkToMap(w), nil
					}
					w, err := engine.RandomWalk()
					if err != nil {
						return nil, err
					}
					return walkToMap(w), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}

	return schema, nil
}
