package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for gsearch resources.
	uriScheme = "gsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the recent history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent searches, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Static resource listing the search kinds.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "kinds",
		Name:        "kinds",
		Description: "Search services available to the search tool",
		MIMEType:    "application/json",
	}, s.handleKindsResource)

	// Template for history limited to a number of entries.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{limit}",
		Name:        "history-limited",
		Description: "The given number of most recent searches",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleHistoryResource returns recorded searches.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	limit, ok := extractHistoryLimit(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if s.ports.History == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	entries, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	data, err := json.MarshalIndent(historyOutputs(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

// handleKindsResource lists the supported search kinds.
func (s *Server) handleKindsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type kindInfo struct {
		Kind        string `json:"kind"`
		Description string `json:"description"`
	}

	kinds := domain.AllKinds()
	infos := make([]kindInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = kindInfo{Kind: k.String(), Description: k.Description()}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling kinds: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractHistoryLimit parses gsearch://history or gsearch://history/{limit}.
// A bare history URI has limit 0 (every entry).
func extractHistoryLimit(uri string) (int, bool) {
	const base = uriScheme + "history"

	if uri == base {
		return 0, true
	}
	if !strings.HasPrefix(uri, base+"/") {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimPrefix(uri, base+"/"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
