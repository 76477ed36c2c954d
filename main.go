// Notion Workspace MCP Server - A Model Context Protocol server for Notion
// Provides tools for managing pages, databases, blocks, comments, and users
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/notion-workspace-mcp-server/internal/notion"
	"github.com/olgasafonova/notion-workspace-mcp-server/tools"
	"github.com/olgasafonova/notion-workspace-mcp-server/tracing"
)

const (
	ServerName    = "notion-workspace-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := notion.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shut down tracing", "error", err)
		}
	}()

	// Create Notion client
	client := notion.NewClient(config, notion.WithLogger(logger))
	defer client.Close()

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Notion Workspace MCP Server provides tools for managing a Notion workspace.

Every tool returns a result envelope: {"successful": true/false, "data": ..., "error": null or message}.
Check "successful" before using "data"; failures carry a human-readable "error" instead of a protocol error.

Available tools:
- notion_get_about_me / notion_list_users / notion_get_about_user: workspace users
- notion_create_page / notion_update_page / notion_archive_page / notion_list_pages: page management
- notion_get_page_property: single page property values
- notion_create_database / notion_fetch_database / notion_update_schema_database: database schemas
- notion_insert_row_database / notion_fetch_row / notion_update_row_database: database rows
- notion_query_database / notion_query_database_all: row queries (one page / all pages)
- notion_add_page_content / notion_add_multiple_page_content / notion_append_block_children: adding content
- notion_update_block / notion_delete_block: editing content
- notion_fetch_block_contents / notion_fetch_all_block_contents / notion_fetch_block_metadata: reading content
- notion_create_comment / notion_get_comment_by_id / notion_fetch_comments: comments
- notion_search / notion_fetch_data: workspace search

Configure via environment variables:
- NOTION_TOKEN: Integration token (required)
- NOTION_VERSION: API version header (default 2022-06-28)
- NOTION_TIMEOUT: Request timeout as a Go duration (default 30s)
- NOTION_MAX_RETRIES: Retry budget per request`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Notion Workspace MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
		"api_version", config.Version,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
