package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

const (
	defaultCount        = 8
	maxCount            = 64
	defaultHistoryLimit = 20
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Kind  string `json:"kind" jsonschema:"search service: web, news, book, video, image, local or patent"`
	Query string `json:"query" jsonschema:"the search keywords"`
	Count int    `json:"count,omitempty" jsonschema:"number of results to return (default 8, max 64)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Kind    string         `json:"kind"`
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput represents a single search result.
type ResultOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary,omitempty"`
}

// HistoryInput is the input schema for the search_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 20)"`
}

// HistoryOutput is the output schema for the search_history tool.
type HistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
}

// HistoryEntryOutput represents one recorded search.
type HistoryEntryOutput struct {
	Kind      string `json:"kind"`
	Keyword   string `json:"keyword"`
	Requested int    `json:"requested"`
	Returned  int    `json:"returned"`
	Backend   string `json:"backend"`
	CreatedAt string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search one of Google's search services (web, news, book, video, image, local, patent)",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_history",
		Description: "List recent searches, newest first",
	}, s.handleHistory)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	kind := domain.KindWeb
	if input.Kind != "" {
		parsed, err := domain.ParseKind(input.Kind)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("unknown kind %q: %w", input.Kind, err)
		}
		kind = parsed
	}

	count := input.Count
	if count <= 0 {
		count = defaultCount
	}
	count = min(count, maxCount)

	items, err := s.ports.Search.Search(ctx, kind, input.Query, count)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Kind:    kind.String(),
		Results: make([]ResultOutput, len(items)),
		Count:   len(items),
	}

	for i, item := range items {
		output.Results[i] = ResultOutput{
			ID:      item.ID(),
			Title:   item.Title(),
			URL:     item.URL(),
			Summary: domain.Summary(item),
		}
	}

	return nil, output, nil
}

// handleHistory handles the search_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	if s.ports.History == nil {
		return nil, HistoryOutput{}, errors.New("search history is disabled")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("listing history: %w", err)
	}

	output := HistoryOutput{
		Entries: historyOutputs(entries),
		Count:   len(entries),
	}
	return nil, output, nil
}

func historyOutputs(entries []domain.HistoryEntry) []HistoryEntryOutput {
	out := make([]HistoryEntryOutput, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryOutput{
			Kind:      e.Kind.String(),
			Keyword:   e.Keyword,
			Requested: e.Requested,
			Returned:  e.Returned,
			Backend:   e.Backend,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}
