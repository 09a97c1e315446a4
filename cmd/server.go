package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mhassouna/docuchat/internal/chat"
	"github.com/mhassouna/docuchat/internal/config"
	"github.com/mhassouna/docuchat/internal/history"
	"github.com/mhassouna/docuchat/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the docuchat HTTP server",
	Long:  `Starts the chat API server with filter extraction, document-grounded answering, and a chat history log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort != 0 {
			cfg.Server.Port = serverPort
		}

		svc, reader, database, err := buildChatService(cfg, true)
		if err != nil {
			return err
		}
		defer database.Close()

		srv := server.New(cfg.Server)
		chat.RegisterRoutes(srv.Router(), svc)
		history.RegisterRoutes(srv.Router(), history.NewStore(database))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "docuchat server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		if snap, err := reader.Load(); err == nil && snap != nil {
			fmt.Fprintf(os.Stderr, "  Catalog: %d files, clients: %v\n", snap.Uploaded, snap.Clients)
		} else {
			fmt.Fprintf(os.Stderr, "  Catalog: none (run the upload pipeline to index documents)\n")
		}

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Override the configured port")
	rootCmd.AddCommand(serverCmd)
}
