package tools

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	apierrors "github.com/olgasafonova/notion-workspace-mcp-server/internal/errors"
	"github.com/olgasafonova/notion-workspace-mcp-server/internal/notion"
	"github.com/olgasafonova/notion-workspace-mcp-server/metrics"
	"github.com/olgasafonova/notion-workspace-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *notion.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *notion.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{client: client, logger: logger}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// User tools
	case "GetAboutMe":
		register(h, server, tool, spec, h.client.GetAboutMeMCP)
	case "ListUsers":
		register(h, server, tool, spec, h.client.ListUsersMCP)
	case "GetAboutUser":
		register(h, server, tool, spec, h.client.GetAboutUserMCP)

	// Page tools
	case "CreatePage":
		register(h, server, tool, spec, h.client.CreatePageMCP)
	case "UpdatePage":
		register(h, server, tool, spec, h.client.UpdatePageMCP)
	case "GetPageProperty":
		register(h, server, tool, spec, h.client.GetPagePropertyMCP)
	case "ArchivePage":
		register(h, server, tool, spec, h.client.ArchivePageMCP)
	case "ListPages":
		register(h, server, tool, spec, h.client.ListPagesMCP)

	// Database tools
	case "CreateDatabase":
		register(h, server, tool, spec, h.client.CreateDatabaseMCP)
	case "InsertRow":
		register(h, server, tool, spec, h.client.InsertRowMCP)
	case "QueryDatabase":
		register(h, server, tool, spec, h.client.QueryDatabaseMCP)
	case "QueryDatabaseAll":
		register(h, server, tool, spec, h.client.QueryDatabaseAllMCP)
	case "FetchDatabase":
		register(h, server, tool, spec, h.client.FetchDatabaseMCP)
	case "FetchRow":
		register(h, server, tool, spec, h.client.FetchRowMCP)
	case "UpdateRow":
		register(h, server, tool, spec, h.client.UpdateRowMCP)
	case "UpdateDatabaseSchema":
		register(h, server, tool, spec, h.client.UpdateDatabaseSchemaMCP)

	// Block tools
	case "AddPageContent":
		register(h, server, tool, spec, h.client.AddPageContentMCP)
	case "AddMultiplePageContent":
		register(h, server, tool, spec, h.client.AddMultiplePageContentMCP)
	case "AppendBlockChildren":
		register(h, server, tool, spec, h.client.AppendBlockChildrenMCP)
	case "UpdateBlock":
		register(h, server, tool, spec, h.client.UpdateBlockMCP)
	case "DeleteBlock":
		register(h, server, tool, spec, h.client.DeleteBlockMCP)
	case "FetchBlockContents":
		register(h, server, tool, spec, h.client.FetchBlockContentsMCP)
	case "FetchAllBlockContents":
		register(h, server, tool, spec, h.client.FetchAllBlockContentsMCP)
	case "FetchBlockMetadata":
		register(h, server, tool, spec, h.client.FetchBlockMetadataMCP)

	// Comment tools
	case "CreateComment":
		register(h, server, tool, spec, h.client.CreateCommentMCP)
	case "GetCommentByID":
		register(h, server, tool, spec, h.client.GetCommentByIDMCP)
	case "FetchComments":
		register(h, server, tool, spec, h.client.FetchCommentsMCP)

	// Search tools
	case "Search":
		register(h, server, tool, spec, h.client.SearchMCP)
	case "FetchData":
		register(h, server, tool, spec, h.client.FetchDataMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging, and flattens the outcome into the result envelope: operation
// failures surface as {successful: false, error: "..."} rather than as
// protocol errors, so the caller always receives a well-formed result.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (any, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, notion.Envelope, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		data, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			kind := apierrors.KindOf(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.ErrorsTotal.WithLabelValues(spec.Name, kind.String()).Inc()
			h.logger.Warn("Tool failed", "tool", spec.Name, "kind", kind.String(), "error", err)
			return nil, notion.Failure(err), nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logger.Info("Tool executed", "tool", spec.Name, "category", spec.Category, "duration_seconds", duration)
		return nil, notion.Success(data), nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}
