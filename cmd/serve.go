package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhassouna/docuchat/internal/config"
	mcpserver "github.com/mhassouna/docuchat/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing document chat and filter extraction tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		svc, reader, _, err := buildChatService(cfg, false)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "docuchat MCP server started on stdio (catalog=%s)\n", reader.Path())

		srv := mcpserver.NewServer(svc, reader)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
