// Package notion provides a client for the Notion workspace API and the
// MCP operations layered on top of it. Notion objects (pages, databases,
// blocks, comments, users) are carried as opaque maps: the server is a
// translation layer and owns none of their schema.
package notion

// Object is a raw Notion API object.
type Object = map[string]any

// PaginatedList is the envelope Notion returns for every listing call.
type PaginatedList struct {
	Object     string   `json:"object"`
	Results    []Object `json:"results"`
	NextCursor *string  `json:"next_cursor"`
	HasMore    bool     `json:"has_more"`
}

// APIError is the error body Notion returns for rejected requests.
type APIError struct {
	Object  string `json:"object"` // always "error"
	Status  int    `json:"status"`
	Code    string `json:"code"` // e.g. "object_not_found", "validation_error"
	Message string `json:"message"`
}

func (e APIError) String() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// TextRun builds a minimal single-run rich text value from plain text.
func TextRun(content string) []map[string]any {
	return []map[string]any{
		{"type": "text", "text": map[string]any{"content": content}},
	}
}

// TitleValue builds the property value for a title-typed property.
func TitleValue(title string) map[string]any {
	return map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": title}},
		},
	}
}

// ExternalCover builds a cover value pointing at an external image URL.
func ExternalCover(url string) map[string]any {
	return map[string]any{"external": map[string]any{"url": url}}
}

// EmojiIcon builds an emoji icon value.
func EmojiIcon(emoji string) map[string]any {
	return map[string]any{"emoji": emoji}
}

// UserSummary is the reduced projection returned by the list-users tool.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PageSummary is the reduced projection returned by the list-pages tool.
type PageSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
