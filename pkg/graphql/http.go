package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
)

// GraphQLRequest represents a GraphQL HTTP request
type GraphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// GraphQLResponse represents a GraphQL HTTP response
type GraphQLResponse struct {
	Data   any            `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error
type GraphQLError struct {
	Message string `json:"message"`
}

func toResponse(result *graphql.Result) GraphQLResponse {
	response := GraphQLResponse{Data: result.Data}
	if result.HasErrors() {
		response.Errors = make([]GraphQLError, len(result.Errors))
		for i, err := range result.Errors {
			response.Errors[i] = GraphQLError{Message: err.Message}
		}
	}
	return response
}

// GraphQLHandler handles GraphQL HTTP requests
type GraphQLHandler struct {
	schema   graphql.Schema
	maxDepth int
}

// HandlerOption configures a GraphQLHandler.
type HandlerOption func(*GraphQLHandler)

// WithMaxDepth overrides DefaultMaxDepth. Zero or less disables the check.
func WithMaxDepth(depth int) HandlerOption {
	return func(h *GraphQLHandler) { h.maxDepth = depth }
}

// NewGraphQLHandler creates a new GraphQL HTTP handler
func NewGraphQLHandler(schema graphql.Schema, opts ...HandlerOption) *GraphQLHandler {
	h := &GraphQLHandler{
		schema:   schema,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP accepts POSTed JSON requests and GET requests with a query
// parameter.
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GraphQLRequest
	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if req.Query == "" {
		http.Error(w, "Missing query", http.StatusBadRequest)
		return
	}

	var result *graphql.Result
	if h.maxDepth > 0 {
		result = ExecuteWithDepthLimit(r.Context(), h.schema, req.Query, h.maxDepth, req.Variables)
	} else {
		result = ExecuteQueryWithVariables(r.Context(), req.Query, h.schema, req.Variables)
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(toResponse(result))
}
