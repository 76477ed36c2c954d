package notion

// Envelope is the uniform result returned by every tool: exactly one of
// Data (meaningful) and Error (non-nil) is populated according to
// Successful. Failures never surface as MCP protocol errors; the envelope
// is the sole failure-reporting channel.
type Envelope struct {
	Successful bool    `json:"successful"`
	Data       any     `json:"data"`
	Error      *string `json:"error"`
}

// Success wraps an operation's return value in a success envelope.
func Success(data any) Envelope {
	return Envelope{Successful: true, Data: data, Error: nil}
}

// Failure flattens err into a failure envelope with an empty data mapping.
func Failure(err error) Envelope {
	msg := err.Error()
	return Envelope{Successful: false, Data: map[string]any{}, Error: &msg}
}

// GetAboutMeArgs has no parameters.
type GetAboutMeArgs struct{}

// ListUsersArgs contains parameters for listing workspace users.
type ListUsersArgs struct {
	PageSize    int    `json:"page_size,omitempty" jsonschema_description:"Maximum users per request (default 30)"`
	StartCursor string `json:"start_cursor,omitempty" jsonschema_description:"Cursor from a previous response for the next page"`
}

// GetAboutUserArgs contains parameters for retrieving one user.
type GetAboutUserArgs struct {
	UserID string `json:"user_id" jsonschema:"required" jsonschema_description:"ID of the user to retrieve"`
}

// CreatePageArgs contains parameters for creating a page.
type CreatePageArgs struct {
	ParentID string `json:"parent_id" jsonschema:"required" jsonschema_description:"ID of the parent page"`
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Title of the new page"`
	Cover    string `json:"cover,omitempty" jsonschema_description:"URL for an external cover image"`
	Icon     string `json:"icon,omitempty" jsonschema_description:"Emoji to use as the page icon"`
}

// UpdatePageArgs contains parameters for updating a page.
type UpdatePageArgs struct {
	PageID     string         `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page to update"`
	Title      string         `json:"title,omitempty" jsonschema_description:"New title for the page"`
	Archived   *bool          `json:"archived,omitempty" jsonschema_description:"true to archive, false to restore"`
	CoverURL   string         `json:"cover_url,omitempty" jsonschema_description:"URL for a new external cover image"`
	IconEmoji  string         `json:"icon_emoji,omitempty" jsonschema_description:"Emoji for the new page icon"`
	Properties map[string]any `json:"properties,omitempty" jsonschema_description:"Page properties to update"`
}

// GetPagePropertyArgs contains parameters for retrieving one property value.
type GetPagePropertyArgs struct {
	PageID      string `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page"`
	PropertyID  string `json:"property_id" jsonschema:"required" jsonschema_description:"ID of the property to retrieve"`
	PageSize    int    `json:"page_size,omitempty" jsonschema_description:"Items per request for paginated properties"`
	StartCursor string `json:"start_cursor,omitempty" jsonschema_description:"Cursor for the next page of results"`
}

// ArchivePageArgs contains parameters for archiving or restoring a page.
type ArchivePageArgs struct {
	PageID  string `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page to archive or restore"`
	Archive *bool  `json:"archive,omitempty" jsonschema_description:"true to archive, false to restore (default true)"`
}

// ListPagesArgs contains parameters for listing accessible pages.
type ListPagesArgs struct {
	Keyword string `json:"keyword,omitempty" jsonschema_description:"Keyword to filter pages by title"`
}

// CreateDatabaseArgs contains parameters for creating a database.
type CreateDatabaseArgs struct {
	ParentID   string         `json:"parent_id" jsonschema:"required" jsonschema_description:"ID of the page that will contain the database"`
	Title      string         `json:"title" jsonschema:"required" jsonschema_description:"Title for the new database"`
	Properties map[string]any `json:"properties" jsonschema:"required" jsonschema_description:"Database schema; at least one property must be title-typed"`
}

// InsertRowArgs contains parameters for creating a row in a database.
type InsertRowArgs struct {
	DatabaseID string           `json:"database_id" jsonschema:"required" jsonschema_description:"ID of the target database"`
	Properties map[string]any   `json:"properties" jsonschema:"required" jsonschema_description:"Property values matching the database schema"`
	Icon       string           `json:"icon,omitempty" jsonschema_description:"Emoji icon for the row's page"`
	Cover      string           `json:"cover,omitempty" jsonschema_description:"Cover image URL for the row's page"`
	Children   []map[string]any `json:"children,omitempty" jsonschema_description:"Block objects to add as content"`
}

// SortArg orders query results by one property.
type SortArg struct {
	Property  string `json:"property" jsonschema:"required" jsonschema_description:"Property name to sort by"`
	Direction string `json:"direction,omitempty" jsonschema_description:"ascending (default) or descending"`
}

// QueryDatabaseArgs contains parameters for querying database rows.
type QueryDatabaseArgs struct {
	DatabaseID  string    `json:"database_id" jsonschema:"required" jsonschema_description:"ID of the database to query"`
	PageSize    int       `json:"page_size,omitempty" jsonschema_description:"Rows per request (default 10)"`
	Sorts       []SortArg `json:"sorts,omitempty" jsonschema_description:"Sort specifications"`
	StartCursor string    `json:"start_cursor,omitempty" jsonschema_description:"Cursor for the next page of results"`
}

// QueryDatabaseAllArgs contains parameters for draining a database query.
type QueryDatabaseAllArgs struct {
	DatabaseID string `json:"database_id" jsonschema:"required" jsonschema_description:"ID of the database to query"`
	PageSize   int    `json:"page_size,omitempty" jsonschema_description:"Rows fetched per underlying request (default 100)"`
}

// FetchDatabaseArgs contains parameters for retrieving database metadata.
type FetchDatabaseArgs struct {
	DatabaseID string `json:"database_id" jsonschema:"required" jsonschema_description:"ID of the database to fetch"`
}

// FetchRowArgs contains parameters for retrieving a row.
type FetchRowArgs struct {
	PageID string `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page (row) to retrieve"`
}

// UpdateRowArgs contains parameters for updating a row.
type UpdateRowArgs struct {
	PageID     string         `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page (row) to update"`
	Properties map[string]any `json:"properties,omitempty" jsonschema_description:"Property values to update"`
	Icon       string         `json:"icon,omitempty" jsonschema_description:"New emoji icon"`
	Cover      string         `json:"cover,omitempty" jsonschema_description:"New cover image URL"`
	Archived   *bool          `json:"archived,omitempty" jsonschema_description:"true to archive the row (default false)"`
}

// UpdateDatabaseSchemaArgs contains parameters for updating a database.
type UpdateDatabaseSchemaArgs struct {
	DatabaseID  string         `json:"database_id" jsonschema:"required" jsonschema_description:"ID of the database to update"`
	Title       string         `json:"title,omitempty" jsonschema_description:"New database title"`
	Description string         `json:"description,omitempty" jsonschema_description:"New database description"`
	Properties  map[string]any `json:"properties,omitempty" jsonschema_description:"New schema properties"`
}

// AddPageContentArgs contains parameters for appending one content block.
type AddPageContentArgs struct {
	ParentBlockID string         `json:"parent_block_id" jsonschema:"required" jsonschema_description:"ID of the page or block to add content to"`
	ContentBlock  map[string]any `json:"content_block" jsonschema:"required" jsonschema_description:"A single block object"`
	After         string         `json:"after,omitempty" jsonschema_description:"ID of an existing block to append after"`
}

// AddMultiplePageContentArgs contains parameters for appending content blocks.
type AddMultiplePageContentArgs struct {
	ParentBlockID string           `json:"parent_block_id" jsonschema:"required" jsonschema_description:"ID of the page or block to add content to"`
	ContentBlocks []map[string]any `json:"content_blocks" jsonschema:"required" jsonschema_description:"Block objects, or {content: text} shorthands (max 100)"`
	After         string           `json:"after,omitempty" jsonschema_description:"ID of an existing block to append after"`
}

// AppendBlockChildrenArgs contains parameters for appending child blocks.
type AppendBlockChildrenArgs struct {
	BlockID  string           `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the parent block"`
	Children []map[string]any `json:"children" jsonschema:"required" jsonschema_description:"Block objects to append (max 100)"`
	After    string           `json:"after,omitempty" jsonschema_description:"ID of an existing child block to append after"`
}

// UpdateBlockArgs contains parameters for updating a block's content.
type UpdateBlockArgs struct {
	BlockID              string         `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the block to update"`
	BlockType            string         `json:"block_type" jsonschema:"required" jsonschema_description:"Block type, e.g. paragraph, to_do, heading_1"`
	Content              string         `json:"content" jsonschema:"required" jsonschema_description:"New text content for the block"`
	AdditionalProperties map[string]any `json:"additional_properties,omitempty" jsonschema_description:"Extra fields, e.g. checked for to_do blocks"`
}

// DeleteBlockArgs contains parameters for deleting (archiving) a block.
type DeleteBlockArgs struct {
	BlockID string `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the block to delete"`
}

// FetchBlockContentsArgs contains parameters for listing child blocks.
type FetchBlockContentsArgs struct {
	BlockID     string `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the parent block or page"`
	PageSize    int    `json:"page_size,omitempty" jsonschema_description:"Blocks per request"`
	StartCursor string `json:"start_cursor,omitempty" jsonschema_description:"Cursor for the next page of results"`
}

// FetchAllBlockContentsArgs contains parameters for draining child blocks.
type FetchAllBlockContentsArgs struct {
	BlockID  string `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the parent block or page"`
	PageSize int    `json:"page_size,omitempty" jsonschema_description:"Blocks fetched per underlying request (default 100)"`
}

// FetchBlockMetadataArgs contains parameters for retrieving one block.
type FetchBlockMetadataArgs struct {
	BlockID string `json:"block_id" jsonschema:"required" jsonschema_description:"ID of the block to retrieve"`
}

// CommentContent is the text of a new comment.
type CommentContent struct {
	Content string `json:"content" jsonschema_description:"Comment text"`
}

// CreateCommentArgs contains parameters for creating a comment. One of
// DiscussionID and ParentPageID is required.
type CreateCommentArgs struct {
	Comment      CommentContent `json:"comment" jsonschema:"required" jsonschema_description:"Comment content"`
	DiscussionID string         `json:"discussion_id,omitempty" jsonschema_description:"Discussion thread to reply to"`
	ParentPageID string         `json:"parent_page_id,omitempty" jsonschema_description:"Page to start a new comment thread on"`
}

// GetCommentByIDArgs contains parameters for fetching one comment.
type GetCommentByIDArgs struct {
	ParentBlockID string `json:"parent_block_id" jsonschema:"required" jsonschema_description:"Page or block the comment lives under"`
	CommentID     string `json:"comment_id" jsonschema:"required" jsonschema_description:"ID of the comment to retrieve"`
}

// FetchCommentsArgs contains parameters for listing comments.
type FetchCommentsArgs struct {
	BlockID     string `json:"block_id" jsonschema:"required" jsonschema_description:"Page or block to fetch comments from"`
	PageSize    int    `json:"page_size,omitempty" jsonschema_description:"Comments per request (default 100)"`
	StartCursor string `json:"start_cursor,omitempty" jsonschema_description:"Cursor for the next page of results"`
}

// SearchArgs contains parameters for title search.
type SearchArgs struct {
	Query       string `json:"query,omitempty" jsonschema_description:"Search term; empty returns all accessible items"`
	PageSize    int    `json:"page_size,omitempty" jsonschema_description:"Results per request (default 10)"`
	StartCursor string `json:"start_cursor,omitempty" jsonschema_description:"Cursor for the next page of results"`
}

// FetchDataArgs contains parameters for the combined fetch operation.
type FetchDataArgs struct {
	GetAll       bool   `json:"get_all,omitempty" jsonschema_description:"Fetch both pages and databases"`
	GetDatabases bool   `json:"get_databases,omitempty" jsonschema_description:"Fetch only databases"`
	GetPages     bool   `json:"get_pages,omitempty" jsonschema_description:"Fetch only pages"`
	PageSize     int    `json:"page_size,omitempty" jsonschema_description:"Items per request (default 100)"`
	Query        string `json:"query,omitempty" jsonschema_description:"Keyword to filter results"`
}
