package mcptool

import (
	"context"
	"log/slog"
)

// CollectTools opens a scoped session against each server, gathers its tools,
// and closes the session again. A server that fails to connect or list is
// skipped with a warning so one dead server does not hide the others.
func CollectTools(ctx context.Context, servers []ServerConfig, logger *slog.Logger) []Tool {
	if logger == nil {
		logger = slog.Default()
	}

	var tools []Tool
	for _, server := range servers {
		session, err := Connect(ctx, server, logger)
		if err != nil {
			logger.Warn("mcp.server.unreachable", "server", server.Name, "url", server.URL, "error", err)
			continue
		}
		serverTools, err := session.ListTools(ctx)
		session.Close()
		if err != nil {
			logger.Warn("mcp.server.list_failed", "server", server.Name, "error", err)
			continue
		}
		tools = append(tools, serverTools...)
	}
	return tools
}
