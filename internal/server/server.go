package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/signal"
	"github.com/mj1618/winstack/internal/window"
	"github.com/rs/zerolog"
)

// NotificationWindowOpened is the MCP notification method sent for every opened window.
const NotificationWindowOpened = "notifications/winstack/window_opened"

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server exposes one live window session over MCP.
type Server struct {
	manager  *window.Manager
	viewport model.Size
	mcp      *mcpserver.MCPServer
	log      zerolog.Logger
}

// New creates an MCP server with all window tools registered.
func New(manager *window.Manager, viewport model.Size, version string, log zerolog.Logger) *Server {
	s := &Server{
		manager:  manager,
		viewport: viewport,
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("winstack", version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// Forward relays a signal task to every connected MCP client. It is meant to
// be subscribed on the bus the manager notifies.
func (s *Server) Forward(_ context.Context, task signal.Task) error {
	s.mcp.SendNotificationToAllClients(NotificationWindowOpened, map[string]any{
		"id":    task.ID,
		"type":  task.Type,
		"owner": task.Owner,
		"value": task.Value,
	})
	s.log.Debug().Str("task", task.ID).Msg("forwarded to mcp clients")
	return nil
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("open_window",
			mcp.WithDescription("Open a window of a declared type. It is placed at its template anchor and cascaded off any window on the same point."),
			mcp.WithString("type", mcp.Description("Window type (see list_templates)"), mcp.Required()),
		),
		s.handleOpen,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List every open window in registration order with its point, size and flags"),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_templates",
			mcp.WithDescription("List the window types that can be opened"),
		),
		s.handleTemplates,
	)

	s.mcp.AddTool(
		mcp.NewTool("arrange_window",
			mcp.WithDescription("Re-run cascade arrangement for one window"),
			mcp.WithString("key", mcp.Description("Window key, e.g. window-0"), mcp.Required()),
		),
		s.handleArrange,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_window",
			mcp.WithDescription("Move a window to a point, as after a drag, then arrange it"),
			mcp.WithString("key", mcp.Description("Window key"), mcp.Required()),
			mcp.WithNumber("x", mcp.Description("Left edge"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Top edge"), mcp.Required()),
		),
		s.handleMove,
	)

	s.mcp.AddTool(
		mcp.NewTool("minimize_window",
			mcp.WithDescription("Minimize a window"),
			mcp.WithString("key", mcp.Description("Window key"), mcp.Required()),
		),
		s.handleMinimize,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_window",
			mcp.WithDescription("Restore a minimized window and arrange it"),
			mcp.WithString("key", mcp.Description("Window key"), mcp.Required()),
		),
		s.handleRestore,
	)

	s.mcp.AddTool(
		mcp.NewTool("lock_window",
			mcp.WithDescription("Lock or unlock a window"),
			mcp.WithString("key", mcp.Description("Window key"), mcp.Required()),
			mcp.WithBoolean("locked", mcp.Description("Lock state (default: true)")),
		),
		s.handleLock,
	)
}
