package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			History: &mockHistoryService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

// connectClient serves s over an in-memory transport and returns a client session.
func connectClient(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "gsearch-test", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func decodeStructured(t *testing.T, v any, out any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestServer_Connect_SearchTool(t *testing.T) {
	search := &mockSearchService{items: []domain.Item{
		domain.NewBook(domain.BookFields{Title: "Go in Practice", URL: "https://books.example/go"}),
	}}
	s, err := NewServer(&Ports{Search: search})
	require.NoError(t, err)

	session := connectClient(t, s)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, len(tools.Tools))
	for i, tool := range tools.Tools {
		names[i] = tool.Name
	}
	assert.ElementsMatch(t, []string{"search", "search_history"}, names)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search",
		Arguments: map[string]any{"kind": "book", "query": "golang", "count": 3},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out SearchOutput
	decodeStructured(t, result.StructuredContent, &out)
	assert.Equal(t, "book", out.Kind)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Go in Practice", out.Results[0].Title)

	assert.Equal(t, domain.KindBook, search.gotKind)
	assert.Equal(t, "golang", search.gotKeyword)
	assert.Equal(t, 3, search.gotCount)
}

func TestServer_Connect_SearchToolError(t *testing.T) {
	s, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	session := connectClient(t, s)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search",
		Arguments: map[string]any{"kind": "blog", "query": "golang"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestServer_Connect_KindsResource(t *testing.T) {
	s, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	session := connectClient(t, s)

	res, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uriScheme + "kinds"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, `"patent"`)
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	s, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunHTTP(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}
