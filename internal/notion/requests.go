package notion

// Typed request bodies, one per Notion API call shape. Fields the caller
// did not supply are dropped from the wire via omitempty, matching the
// API's treatment of absent keys.

// CreatePageRequest is the body for POST /pages.
type CreatePageRequest struct {
	Parent     map[string]any   `json:"parent"`
	Properties map[string]any   `json:"properties"`
	Icon       map[string]any   `json:"icon,omitempty"`
	Cover      map[string]any   `json:"cover,omitempty"`
	Children   []map[string]any `json:"children,omitempty"`
}

// UpdatePageRequest is the body for PATCH /pages/{id}. Archived is a
// pointer so that "not supplied" and "restore" stay distinguishable.
type UpdatePageRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
	Archived   *bool          `json:"archived,omitempty"`
	Icon       map[string]any `json:"icon,omitempty"`
	Cover      map[string]any `json:"cover,omitempty"`
}

// CreateDatabaseRequest is the body for POST /databases.
type CreateDatabaseRequest struct {
	Parent     map[string]any   `json:"parent"`
	Title      []map[string]any `json:"title"`
	Properties map[string]any   `json:"properties"`
}

// UpdateDatabaseRequest is the body for PATCH /databases/{id}.
type UpdateDatabaseRequest struct {
	Title       []map[string]any `json:"title,omitempty"`
	Description []map[string]any `json:"description,omitempty"`
	Properties  map[string]any   `json:"properties,omitempty"`
}

// Sort orders database query results by one property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryDatabaseRequest is the body for POST /databases/{id}/query.
type QueryDatabaseRequest struct {
	PageSize    int    `json:"page_size,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// AppendChildrenRequest is the body for PATCH /blocks/{id}/children.
type AppendChildrenRequest struct {
	Children []map[string]any `json:"children"`
	After    string           `json:"after,omitempty"`
}

// CreateCommentRequest is the body for POST /comments. Exactly one of
// DiscussionID and Parent is set.
type CreateCommentRequest struct {
	RichText     []map[string]any `json:"rich_text"`
	DiscussionID string           `json:"discussion_id,omitempty"`
	Parent       map[string]any   `json:"parent,omitempty"`
}

// SearchFilter restricts search results to one object type.
type SearchFilter struct {
	Property string `json:"property"` // always "object"
	Value    string `json:"value"`    // "page" or "database"
}

// SearchRequest is the body for POST /search.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
}
