package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the deck to AI assistants",
	Long:  `Commands for the Model Context Protocol (MCP) server.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server that lets an assistant read and edit
the deck. Edits are saved like any other change.

Tools:
  list_slides, get_markdown, commit_markdown,
  add_slide, update_slide, delete_slide

Resources:
  slidedeck://slides           the deck as a JSON presentation document
  slidedeck://markdown         the deck as markdown
  slidedeck://slides/{number}  one slide

Without --port the server speaks JSON-RPC on stdio. Desktop clients start
it themselves, e.g. in claude_desktop_config.json:

  {
    "mcpServers": {
      "slidedeck": {
        "command": "/path/to/slidedeck",
        "args": ["mcp", "serve"]
      }
    }
  }

With --port it serves streamable HTTP instead, for MCP Inspector or
remote clients:

  slidedeck mcp serve --port 8080`,
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
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid --port %d", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{Deck: deckService})
	if err != nil {
		if errors.Is(err, mcp.ErrMissingDeckService) {
			return err
		}
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if mcpPort == 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
