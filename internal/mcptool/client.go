// Package mcptool connects agents to external MCP tool servers. Connections
// are scoped: opened for a single unit of work and always closed afterwards,
// so a slow or dead server never holds resources between requests.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

var ErrCallingTool = errors.New("error calling tool")

const (
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// ServerConfig describes a remote MCP tool server.
type ServerConfig struct {
	Name      string
	URL       string
	Transport string
}

// Tool is a tool advertised by a connected server.
type Tool struct {
	Server      string
	Name        string
	Description string
	InputSchema map[string]any
}

// Session is a live connection to one tool server. Callers must Close it.
type Session struct {
	server ServerConfig
	client *mcpclient.Client
	logger *slog.Logger
}

// Connect opens and initializes a session against the given server.
func Connect(ctx context.Context, server ServerConfig, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var client *mcpclient.Client
	var err error
	switch server.Transport {
	case TransportStreamableHTTP:
		client, err = mcpclient.NewStreamableHttpClient(server.URL)
	case TransportSSE, "":
		client, err = mcpclient.NewSSEMCPClient(server.URL)
	default:
		return nil, fmt.Errorf("unsupported transport %q for tool server %q", server.Transport, server.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("create MCP client for %q: %w", server.Name, err)
	}
	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("start MCP client for %q: %w", server.Name, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{Name: "mattin", Version: "0.1.0"}
	initRequest.Params.Capabilities = mcp.ClientCapabilities{}

	if _, err := client.Initialize(initCtx, initRequest); err != nil {
		client.Close()
		return nil, fmt.Errorf("initialize MCP client for %q: %w", server.Name, err)
	}

	logger.Debug("mcp.session.open", "server", server.Name, "transport", server.Transport)
	return &Session{server: server, client: client, logger: logger}, nil
}

func (s *Session) Close() {
	if err := s.client.Close(); err != nil {
		s.logger.Warn("mcp.session.close_failed", "server", s.server.Name, "error", err)
		return
	}
	s.logger.Debug("mcp.session.closed", "server", s.server.Name)
}

// ListTools fetches the tools the server advertises.
func (s *Session) ListTools(ctx context.Context) ([]Tool, error) {
	listCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.client.ListTools(listCtx, mcp.ListToolsRequest{})
	if err != nil {
		s.logger.Error("mcp.tools.list_failed", "server", s.server.Name, "error", err)
		return nil, err
	}

	tools := make([]Tool, 0, len(result.Tools))
	for _, t := range result.Tools {
		tool := Tool{Server: s.server.Name, Name: t.Name, Description: t.Description}
		if len(t.InputSchema.Properties) > 0 {
			tool.InputSchema = map[string]any{
				"type":       "object",
				"properties": t.InputSchema.Properties,
				"required":   t.InputSchema.Required,
			}
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// CallTool invokes a named tool and returns its text content, concatenated.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	request := mcp.CallToolRequest{
		Request: mcp.Request{Method: "tools/call"},
	}
	request.Params.Name = name
	if len(args) > 0 {
		request.Params.Arguments = args
	}

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	s.logger.Debug("mcp.tool.call", "server", s.server.Name, "tool", name)
	result, err := s.client.CallTool(callCtx, request)
	if err != nil {
		s.logger.Error("mcp.tool.call_failed", "server", s.server.Name, "tool", name, "error", err)
		return "", errors.Join(ErrCallingTool, err)
	}
	if result.IsError {
		msg := "tool reported an error"
		if len(result.Content) > 0 {
			if c, ok := result.Content[0].(mcp.TextContent); ok {
				msg = c.Text
			}
		}
		s.logger.Error("mcp.tool.call_failed", "server", s.server.Name, "tool", name, "error", msg)
		return "", errors.Join(ErrCallingTool, errors.New(msg))
	}

	var out string
	for _, content := range result.Content {
		if c, ok := content.(mcp.TextContent); ok {
			out += c.Text
		}
	}
	return out, nil
}
