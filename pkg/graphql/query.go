package graphql

import (
	"context"
	"encoding/json"

	"github.com/graphql-go/graphql"
)

// ExecuteQuery executes a GraphQL query against a schema
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return ExecuteQueryWithVariables(context.Background(), query, schema, nil)
}

// ExecuteQueryWithVariables executes a GraphQL query with variables
func ExecuteQueryWithVariables(ctx context.Context, query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

// ExecuteJSON runs query and returns the indented JSON response. The
// second return is true when the response carries errors.
func ExecuteJSON(ctx context.Context, query string, schema graphql.Schema) ([]byte, bool, error) {
	result := ExecuteQueryWithVariables(ctx, query, schema, nil)
	out, err := json.MarshalIndent(toResponse(result), "", "  ")
	if err != nil {
		return nil, false, err
	}
	return out, result.HasErrors(), nil
}
