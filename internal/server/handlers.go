package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/winstack/internal/output"
	"gopkg.in/yaml.v3"
)

// yamlResult serializes v to YAML for an MCP response.
func yamlResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("yaml encode: " + err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

// layout returns the current window list, with an error message if one occurred.
func (s *Server) layout(err error) *mcp.CallToolResult {
	result := output.LayoutResult{
		Viewport: s.viewport,
		TS:       time.Now().Unix(),
		Windows:  s.manager.Windows(),
	}
	if err != nil {
		result.Error = err.Error()
		b, _ := yaml.Marshal(result)
		return mcp.NewToolResultError(string(b))
	}
	return yamlResult(result)
}

// keyAction runs fn against the "key" argument and replies with the layout.
func (s *Server) keyAction(request mcp.CallToolRequest, action string, fn func(key string) error) (*mcp.CallToolResult, error) {
	key, err := requireString(request.GetArguments(), "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := fn(key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Str("action", action).Msg("tool failed")
		return s.layout(err), nil
	}
	return s.layout(nil), nil
}

func (s *Server) handleOpen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windowType, err := requireString(request.GetArguments(), "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	key, err := s.manager.Open(ctx, windowType)
	if err != nil {
		s.log.Warn().Err(err).Str("type", windowType).Msg("open failed")
		if key == "" {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return s.layout(err), nil
	}

	w, err := s.manager.Window(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(w), nil
}

func (s *Server) handleList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.layout(nil), nil
}

func (s *Server) handleTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return yamlResult(s.manager.Types()), nil
}

func (s *Server) handleArrange(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.keyAction(request, "arrange", s.manager.Arrange)
}

func (s *Server) handleMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x, err := requireInt(params, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := requireInt(params, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.keyAction(request, "move", func(key string) error {
		return s.manager.Move(key, x, y)
	})
}

func (s *Server) handleMinimize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.keyAction(request, "minimize", s.manager.Minimize)
}

func (s *Server) handleRestore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.keyAction(request, "restore", s.manager.Restore)
}

func (s *Server) handleLock(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locked := boolParam(request.GetArguments(), "locked", true)
	return s.keyAction(request, "lock", func(key string) error {
		return s.manager.SetLocked(key, locked)
	})
}
