package tools

// AllTools contains all tool specifications for the Notion workspace MCP
// server. Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// USER TOOLS
	// ==========================================================================
	{
		Name:     "notion_get_about_me",
		Method:   "GetAboutMe",
		Title:    "Get Bot User",
		Category: "users",
		Description: `Retrieve the bot user associated with the current integration token.

USE WHEN: User asks "who am I connected as", "which integration is this", or a workflow needs the bot's user ID.

NOT FOR: Looking up workspace members (use notion_list_users or notion_get_about_user).

PARAMETERS: None.

RETURNS: The bot user object, including id, name, and owner workspace details.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_list_users",
		Method:   "ListUsers",
		Title:    "List Users",
		Category: "users",
		Description: `List users in the workspace as compact {id, name} entries.

USE WHEN: User asks "who is in this workspace", "list all members", or an ID is needed to mention or assign someone.

NOT FOR: Details of one known user (use notion_get_about_user). Guests are not included by the API.

PARAMETERS:
- page_size: Max users per page (default 30, max 100)
- start_cursor: Cursor from a previous page (optional)

RETURNS: A list of users with id and name; users without a name show "Unknown".`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_get_about_user",
		Method:   "GetAboutUser",
		Title:    "Get User",
		Category: "users",
		Description: `Retrieve full details for one user by ID.

USE WHEN: User asks "who is user X", or a person's email or avatar is needed and their ID is known.

NOT FOR: Discovering user IDs (use notion_list_users first).

PARAMETERS:
- user_id: User identifier, 32-36 hex digits or dashes (required)

RETURNS: The full user object including type, email (for persons), and avatar URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "notion_create_page",
		Method:   "CreatePage",
		Title:    "Create Page",
		Category: "pages",
		Description: `Create a new page under an existing parent page.

USE WHEN: User says "create a page called X", "add a new page under Y".

NOT FOR: Adding a row to a database (use notion_insert_row_database). Not for adding content to an existing page (use notion_add_page_content).

PARAMETERS:
- parent_id: Parent page ID (required)
- title: Page title (required)
- cover: External cover image URL (optional)
- icon: Emoji icon (optional)

RETURNS: The created page object with its id and url.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_update_page",
		Method:   "UpdatePage",
		Title:    "Update Page",
		Category: "pages",
		Description: `Update a page's title, properties, icon, cover, or archive state.

USE WHEN: User says "rename page X", "change the icon of Y", "set property Z on this page".

NOT FOR: Updating rows in a database (use notion_update_row_database). Not for editing page content blocks (use notion_update_block).

PARAMETERS:
- page_id: Page ID (required)
- title: New title (optional; the title property is located automatically)
- properties: Property values keyed by property name (optional)
- icon_emoji: Emoji icon (optional)
- cover_url: External cover image URL (optional)
- archived: Set true to archive, false to restore (optional)

RETURNS: The updated page object.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_get_page_property",
		Method:   "GetPageProperty",
		Title:    "Get Page Property",
		Category: "pages",
		Description: `Retrieve the value of a single page property by its property ID.

USE WHEN: A property is truncated in the page object (long relations, rollups) and its full value is needed.

NOT FOR: Retrieving the whole page (use notion_fetch_row).

PARAMETERS:
- page_id: Page ID (required)
- property_id: Property identifier from the page's properties (required)
- page_size: Max items per page for multi-valued properties (optional)
- start_cursor: Cursor from a previous page (optional)

RETURNS: The property item or a paginated list of property items.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_archive_page",
		Method:   "ArchivePage",
		Title:    "Archive Page",
		Category: "pages",
		Description: `Archive a page (move to trash) or restore it.

USE WHEN: User says "delete page X", "archive this page", "restore page Y from trash".

NOT FOR: Deleting individual blocks (use notion_delete_block).

PARAMETERS:
- page_id: Page ID (required)
- archive: true to archive (default), false to restore

RETURNS: The updated page object with its archived flag.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "notion_list_pages",
		Method:   "ListPages",
		Title:    "List Pages",
		Category: "pages",
		Description: `List pages the integration can access, optionally filtered by keyword.

USE WHEN: User asks "what pages are there", "find the page about X", or a page ID is needed by title.

NOT FOR: Listing databases (use notion_fetch_data with get_databases). Not for full page objects (use notion_fetch_row with the ID).

PARAMETERS:
- keyword: Title filter (optional; empty lists all accessible pages)

RETURNS: A list of {id, title, url} entries; untitled pages show "Untitled".`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DATABASE TOOLS
	// ==========================================================================
	{
		Name:     "notion_create_database",
		Method:   "CreateDatabase",
		Title:    "Create Database",
		Category: "databases",
		Description: `Create a new database under a parent page with a property schema.

USE WHEN: User says "create a table/database for X", "set up a tracker with columns Y and Z".

NOT FOR: Adding rows (use notion_insert_row_database). Not for changing an existing schema (use notion_update_schema_database).

PARAMETERS:
- parent_id: Parent page ID (required)
- title: Database title (required)
- properties: Schema keyed by property name; at least one property must be title-typed, e.g. {"Name": {"title": {}}} (required)

RETURNS: The created database object with its id and schema.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_insert_row_database",
		Method:   "InsertRow",
		Title:    "Insert Database Row",
		Category: "databases",
		Description: `Add a new row (page) to a database.

USE WHEN: User says "add an entry to the X database", "insert a row with these values".

NOT FOR: Creating standalone pages (use notion_create_page). Not for updating existing rows (use notion_update_row_database).

PARAMETERS:
- database_id: Database ID (required)
- properties: Row values keyed by property name, matching the database schema (required)
- children: Content blocks for the row's page body (optional)
- icon: Emoji icon (optional)
- cover: External cover image URL (optional)

RETURNS: The created page object.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_query_database",
		Method:   "QueryDatabase",
		Title:    "Query Database",
		Category: "databases",
		Description: `Query one page of rows from a database, with optional sorting.

USE WHEN: User asks "show entries in database X", "get the first N rows sorted by Y".

NOT FOR: Retrieving every row regardless of count (use notion_query_database_all). Not for database metadata (use notion_fetch_database).

PARAMETERS:
- database_id: Database ID (required)
- sorts: List of {property, direction} with direction "ascending" (default) or "descending" (optional)
- page_size: Max rows per page (default 10, max 100)
- start_cursor: Cursor from a previous page (optional)

RETURNS: One page of row objects plus next_cursor and has_more for continuation.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_query_database_all",
		Method:   "QueryDatabaseAll",
		Title:    "Query All Database Rows",
		Category: "databases",
		Description: `Retrieve ALL rows of a database, following pagination automatically.

USE WHEN: User asks "export the whole database", "count all entries", or complete results are needed for analysis.

NOT FOR: Browsing or previewing (use notion_query_database, which is cheaper on large databases).

PARAMETERS:
- database_id: Database ID (required)
- page_size: Rows fetched per underlying request (default 100)

RETURNS: {results: [...]} containing every row across all pages.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_database",
		Method:   "FetchDatabase",
		Title:    "Fetch Database",
		Category: "databases",
		Description: `Retrieve a database's metadata: title, description, and property schema.

USE WHEN: User asks "what columns does database X have", or the schema is needed before inserting or updating rows.

NOT FOR: Retrieving rows (use notion_query_database).

PARAMETERS:
- database_id: Database ID (required)

RETURNS: The database object including its properties schema.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_row",
		Method:   "FetchRow",
		Title:    "Fetch Database Row",
		Category: "databases",
		Description: `Retrieve one row (page) with all its property values.

USE WHEN: User asks "show the details of entry X", or current values are needed before an update.

NOT FOR: The row's page content blocks (use notion_fetch_block_contents with the row ID).

PARAMETERS:
- page_id: Row page ID (required)

RETURNS: The page object with all properties.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_update_row_database",
		Method:   "UpdateRow",
		Title:    "Update Database Row",
		Category: "databases",
		Description: `Update a row's property values, icon, cover, or archive state.

USE WHEN: User says "change the status of entry X", "archive this row", "update these fields".

NOT FOR: Standalone pages (use notion_update_page). Not for schema changes (use notion_update_schema_database).

PARAMETERS:
- page_id: Row page ID (required)
- properties: New values keyed by property name (optional)
- icon: Emoji icon (optional)
- cover: External cover image URL (optional)
- archived: true to archive the row, false to keep or restore it (default false)

RETURNS: The updated page object.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_update_schema_database",
		Method:   "UpdateDatabaseSchema",
		Title:    "Update Database Schema",
		Category: "databases",
		Description: `Update a database's title, description, or property schema.

USE WHEN: User says "rename the database", "add a column", "change property X to a select".

NOT FOR: Updating row values (use notion_update_row_database).

PARAMETERS:
- database_id: Database ID (required)
- title: New database title (optional)
- description: New description (optional)
- properties: Schema changes keyed by property name; set a property to null to remove it (optional)

RETURNS: The updated database object.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// BLOCK TOOLS
	// ==========================================================================
	{
		Name:     "notion_add_page_content",
		Method:   "AddPageContent",
		Title:    "Add Page Content",
		Category: "blocks",
		Description: `Append a single content block to a page or block.

USE WHEN: User says "add a paragraph/heading/to-do to page X" and exactly one block is needed.

NOT FOR: Multiple blocks at once (use notion_add_multiple_page_content, which is one API call instead of many).

PARAMETERS:
- parent_block_id: Page or block ID to append under (required)
- content_block: Full block object, e.g. {"object": "block", "type": "paragraph", "paragraph": {"rich_text": [...]}} (required)
- after: Block ID to insert after (optional)

RETURNS: The append result containing the created block.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_add_multiple_page_content",
		Method:   "AddMultiplePageContent",
		Title:    "Add Multiple Page Content",
		Category: "blocks",
		Description: `Append up to 100 content blocks to a page in one call.

USE WHEN: User provides several paragraphs, list items, or mixed content to add at once.

NOT FOR: More than 100 blocks (split into multiple calls).

PARAMETERS:
- parent_block_id: Page or block ID to append under (required)
- content_blocks: List of blocks; each is either a full block object or a {"content": "text"} shorthand that becomes a paragraph (required, max 100)
- after: Block ID to insert after (optional)

RETURNS: The append result containing the created blocks.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_append_block_children",
		Method:   "AppendBlockChildren",
		Title:    "Append Block Children",
		Category: "blocks",
		Description: `Append raw block objects as children of a block, passed through verbatim.

USE WHEN: Caller already has API-shaped block payloads (nested structures, tables, toggles) and needs exact control.

NOT FOR: Simple text content (use notion_add_multiple_page_content with shorthands).

PARAMETERS:
- block_id: Parent page or block ID (required)
- children: List of full block objects (required, max 100)
- after: Block ID to insert after (optional)

RETURNS: The append result containing the created blocks.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_update_block",
		Method:   "UpdateBlock",
		Title:    "Update Block",
		Category: "blocks",
		Description: `Replace a block's content by block type.

USE WHEN: User says "change that paragraph to say X", "fix the heading text", "check off that to-do".

NOT FOR: Adding new blocks (use notion_add_page_content). Text block types (paragraph, heading_1-3, bulleted/numbered list item, quote, to_do) take plain content; other types need additional_properties.

PARAMETERS:
- block_id: Block ID (required)
- block_type: Block type, e.g. "paragraph", "heading_2", "to_do" (required)
- content: New text content for rich-text types (required for those types)
- additional_properties: Extra type fields, e.g. {"checked": true} for to_do (optional)

RETURNS: The updated block object.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_delete_block",
		Method:   "DeleteBlock",
		Title:    "Delete Block",
		Category: "blocks",
		Description: `Delete a block by archiving it (moves to trash, restorable in the UI).

USE WHEN: User says "remove that paragraph", "delete block X".

NOT FOR: Archiving whole pages (use notion_archive_page).

PARAMETERS:
- block_id: Block ID (required)

RETURNS: The archived block object.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "notion_fetch_block_contents",
		Method:   "FetchBlockContents",
		Title:    "Fetch Block Contents",
		Category: "blocks",
		Description: `List one page of a block's (or page's) child blocks.

USE WHEN: User asks "what's on page X", "read the content of that page", and a bounded preview suffices.

NOT FOR: Complete content of long pages (use notion_fetch_all_block_contents). Children of nested blocks require a separate call per block.

PARAMETERS:
- block_id: Page or block ID (required)
- page_size: Max blocks per page (default 100)
- start_cursor: Cursor from a previous page (optional)

RETURNS: One page of child block objects plus next_cursor and has_more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_all_block_contents",
		Method:   "FetchAllBlockContents",
		Title:    "Fetch All Block Contents",
		Category: "blocks",
		Description: `Retrieve ALL child blocks of a page or block, following pagination automatically.

USE WHEN: User asks "read the entire page", or complete content is needed for summarizing or exporting.

NOT FOR: Quick previews (use notion_fetch_block_contents).

PARAMETERS:
- block_id: Page or block ID (required)
- page_size: Blocks fetched per underlying request (default 100)

RETURNS: {results: [...]} containing every direct child block across all pages.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_block_metadata",
		Method:   "FetchBlockMetadata",
		Title:    "Fetch Block Metadata",
		Category: "blocks",
		Description: `Retrieve a single block's metadata and typed content.

USE WHEN: The block's type, archived state, or has_children flag is needed before editing it.

NOT FOR: A block's children (use notion_fetch_block_contents).

PARAMETERS:
- block_id: Block ID (required)

RETURNS: The block object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// COMMENT TOOLS
	// ==========================================================================
	{
		Name:     "notion_create_comment",
		Method:   "CreateComment",
		Title:    "Create Comment",
		Category: "comments",
		Description: `Create a comment on a page or reply to an existing discussion thread.

USE WHEN: User says "comment X on that page", "reply to the discussion".

NOT FOR: Commenting on individual blocks without an existing discussion (the API only supports page-level threads and replies).

PARAMETERS:
- comment: {content: "text"} comment body (required)
- parent_page_id: Page to start a new thread on (this or discussion_id required)
- discussion_id: Existing discussion thread to reply to (this or parent_page_id required)

RETURNS: The created comment object with its discussion_id.`,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:     "notion_get_comment_by_id",
		Method:   "GetCommentByID",
		Title:    "Get Comment by ID",
		Category: "comments",
		Description: `Retrieve one comment by scanning the comments under its parent page or block.

USE WHEN: A specific comment's text or author is needed and both its ID and its parent are known.

NOT FOR: Listing a thread (use notion_fetch_comments). Only the first 100 comments under the parent are scanned.

PARAMETERS:
- parent_block_id: Page or block the comment lives under (required)
- comment_id: Comment ID (required)

RETURNS: The matching comment object, or a not-found error.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_comments",
		Method:   "FetchComments",
		Title:    "Fetch Comments",
		Category: "comments",
		Description: `List unresolved comments under a page or block.

USE WHEN: User asks "what comments are on page X", "show the discussion".

NOT FOR: Resolved comments (the API does not return them).

PARAMETERS:
- block_id: Page or block ID (required)
- page_size: Max comments per page (default 100)
- start_cursor: Cursor from a previous page (optional)

RETURNS: One page of comment objects plus next_cursor and has_more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "notion_search",
		Method:   "Search",
		Title:    "Search Workspace",
		Category: "search",
		Description: `Search pages AND databases by title across the workspace.

USE WHEN: User asks "find X in Notion", "is there a page or database about Y".

NOT FOR: Searching page body text (the API matches titles only). Not for typed listings (use notion_fetch_data).

PARAMETERS:
- query: Title text to match; empty returns all accessible items (optional)
- page_size: Max results per page (default 10, max 100)
- start_cursor: Cursor from a previous page (optional)

RETURNS: One page of mixed page and database objects plus next_cursor and has_more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "notion_fetch_data",
		Method:   "FetchData",
		Title:    "Fetch Workspace Data",
		Category: "search",
		Description: `Fetch accessible pages, databases, or both, selected by boolean flags.

USE WHEN: User asks "list my databases", "show everything I have access to".

NOT FOR: Keyword search with ranked results (use notion_search).

PARAMETERS:
- get_pages: Fetch pages (default when no flag is set)
- get_databases: Fetch databases only
- get_all: Fetch pages and databases together
- query: Optional title filter
- page_size: Max results per page (default 100)

RETURNS: One page of matching objects plus next_cursor and has_more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
