package cli

import (
	"context"
	"errors"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/mcp"
	"github.com/custodia-labs/gsearch/internal/logger"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve gsearch to MCP clients",
	Long: `Serve gsearch over the Model Context Protocol so AI assistants can run
Google searches.

Tools:      search, search_history
Resources:  gsearch://kinds, gsearch://history, gsearch://history/{limit}

The server speaks JSON-RPC on stdio unless --port is given, in which case
it serves streamable HTTP on --host:--port.

  gsearch mcp serve
  gsearch mcp serve --port 8080

To register with a desktop assistant, point its MCP configuration at the
binary with the arguments ["mcp", "serve"].`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP listen host")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Search: searchService, History: historyService})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	startConfigWatch(ctx)

	if mcpPort <= 0 {
		logger.Debug("mcp: serving on stdio")
		return server.Run(ctx)
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	cmd.Printf("MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
