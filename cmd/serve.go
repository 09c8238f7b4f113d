package cmd

import (
	"fmt"

	"github.com/mj1618/winstack/internal/server"
	"github.com/mj1618/winstack/internal/signal"
	"github.com/mj1618/winstack/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server hosting a live window session",
	Long: `Start a Model Context Protocol (MCP) server that keeps one window session
alive and exposes it as tools (open_window, list_windows, move_window, ...).
Every opened window is also pushed to connected clients as a notification.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  winstack serve
  winstack serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := server.New(s.manager, s.cfg.Viewport, version.Version, s.log.Logger)
	s.bus.Subscribe(signal.EventWindowOpen, srv.Forward)

	s.log.Info().
		Str("transport", transport).
		Int("templates", s.catalog.Len()).
		Msg("serving window session")

	if err := srv.Serve(server.Config{Transport: transport, Port: port}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
