// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a client method with matching Args types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "notion_create_page")
	Name string

	// Method is the client method name (e.g., "CreatePage")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (users, pages, databases, ...)
	Category string

	// ReadOnly indicates the tool doesn't modify workspace state
	ReadOnly bool

	// Destructive indicates the tool can archive or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
