package notion

import (
	"context"
	"strings"

	apierrors "github.com/olgasafonova/notion-workspace-mcp-server/internal/errors"
)

// MCP operation methods. Each validates its identifier-shaped inputs
// before any network call, builds the typed request for the API, and
// returns either the raw API object or a documented projection. Errors
// carry a Kind; the tool wrapper flattens them into the result envelope.

// GetAboutMeMCP retrieves the bot user for the integration token.
func (c *Client) GetAboutMeMCP(ctx context.Context, _ GetAboutMeArgs) (any, error) {
	return c.Me(ctx)
}

// ListUsersMCP lists workspace users as an {id, name} projection. Users
// without a name get the "Unknown" sentinel.
func (c *Client) ListUsersMCP(ctx context.Context, args ListUsersArgs) (any, error) {
	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 30
	}

	page, err := c.ListUsers(ctx, pageSize, args.StartCursor)
	if err != nil {
		return nil, err
	}

	users := make([]UserSummary, 0, len(page.Results))
	for _, u := range page.Results {
		name := "Unknown"
		if s, ok := u["name"].(string); ok && s != "" {
			name = s
		}
		id, _ := u["id"].(string)
		users = append(users, UserSummary{ID: id, Name: name})
	}
	return users, nil
}

// GetAboutUserMCP retrieves one user by identifier.
func (c *Client) GetAboutUserMCP(ctx context.Context, args GetAboutUserArgs) (any, error) {
	if err := RequireID("user_id", args.UserID); err != nil {
		return nil, err
	}
	return c.GetUser(ctx, args.UserID)
}

// CreatePageMCP creates a page under a parent page.
func (c *Client) CreatePageMCP(ctx context.Context, args CreatePageArgs) (any, error) {
	if err := RequireID("parent_id", args.ParentID); err != nil {
		return nil, err
	}

	req := CreatePageRequest{
		Parent:     map[string]any{"page_id": args.ParentID},
		Properties: map[string]any{"title": TitleValue(args.Title)},
	}
	if args.Cover != "" {
		req.Cover = ExternalCover(args.Cover)
	}
	if args.Icon != "" {
		req.Icon = EmojiIcon(args.Icon)
	}
	return c.CreatePage(ctx, req)
}

// UpdatePageMCP updates a page's title, properties, icon, cover, or
// archive flag. A title update first retrieves the page to discover which
// property key is title-typed; when that retrieval fails the conventional
// "Name" key is used as a lenient fallback.
func (c *Client) UpdatePageMCP(ctx context.Context, args UpdatePageArgs) (any, error) {
	if err := RequireID("page_id", args.PageID); err != nil {
		return nil, err
	}

	req := UpdatePageRequest{Archived: args.Archived}
	if args.CoverURL != "" {
		req.Cover = ExternalCover(args.CoverURL)
	}
	if args.IconEmoji != "" {
		req.Icon = EmojiIcon(args.IconEmoji)
	}

	props := map[string]any{}
	if args.Title != "" {
		titleKey := "Name"
		if meta, err := c.GetPage(ctx, args.PageID); err == nil {
			if pageProps, ok := meta["properties"].(map[string]any); ok {
				titleKey = titleKeyOf(pageProps)
			}
		}
		props[titleKey] = TitleValue(args.Title)
	}
	for k, v := range args.Properties {
		props[k] = v
	}
	if len(props) > 0 {
		req.Properties = props
	}

	return c.UpdatePage(ctx, args.PageID, req)
}

// GetPagePropertyMCP retrieves the value of a single page property.
func (c *Client) GetPagePropertyMCP(ctx context.Context, args GetPagePropertyArgs) (any, error) {
	if err := RequireID("page_id", args.PageID); err != nil {
		return nil, err
	}
	if args.PropertyID == "" {
		return nil, apierrors.Validationf("property_id is required")
	}
	return c.GetPageProperty(ctx, args.PageID, args.PropertyID, args.PageSize, args.StartCursor)
}

// ArchivePageMCP archives a page (default) or restores it.
func (c *Client) ArchivePageMCP(ctx context.Context, args ArchivePageArgs) (any, error) {
	if err := RequireID("page_id", args.PageID); err != nil {
		return nil, err
	}
	archive := true
	if args.Archive != nil {
		archive = *args.Archive
	}
	return c.UpdatePage(ctx, args.PageID, UpdatePageRequest{Archived: &archive})
}

// ListPagesMCP searches accessible pages, optionally filtered by keyword,
// and projects each to {id, title, url}.
func (c *Client) ListPagesMCP(ctx context.Context, args ListPagesArgs) (any, error) {
	req := SearchRequest{
		Filter: &SearchFilter{Property: "object", Value: "page"},
		Query:  args.Keyword,
	}
	page, err := c.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	pages := make([]PageSummary, 0, len(page.Results))
	for _, pg := range page.Results {
		id, _ := pg["id"].(string)
		pageURL, _ := pg["url"].(string)
		pages = append(pages, PageSummary{ID: id, Title: pageTitleOf(pg), URL: pageURL})
	}
	return pages, nil
}

// CreateDatabaseMCP creates a database under a parent page. The supplied
// schema must flag at least one property as title-typed.
func (c *Client) CreateDatabaseMCP(ctx context.Context, args CreateDatabaseArgs) (any, error) {
	if err := RequireID("parent_id", args.ParentID); err != nil {
		return nil, err
	}
	if !hasTitleProperty(args.Properties) {
		return nil, apierrors.Validationf("database must have at least one title property")
	}

	req := CreateDatabaseRequest{
		Parent:     map[string]any{"type": "page_id", "page_id": args.ParentID},
		Title:      TextRun(args.Title),
		Properties: args.Properties,
	}
	return c.CreateDatabase(ctx, req)
}

// InsertRowMCP creates a page (row) inside a database.
func (c *Client) InsertRowMCP(ctx context.Context, args InsertRowArgs) (any, error) {
	if err := RequireID("database_id", args.DatabaseID); err != nil {
		return nil, err
	}

	req := CreatePageRequest{
		Parent:     map[string]any{"database_id": args.DatabaseID},
		Properties: args.Properties,
		Children:   args.Children,
	}
	if args.Icon != "" {
		req.Icon = EmojiIcon(args.Icon)
	}
	if args.Cover != "" {
		req.Cover = ExternalCover(args.Cover)
	}
	return c.CreatePage(ctx, req)
}

// QueryDatabaseMCP returns one page of database rows.
func (c *Client) QueryDatabaseMCP(ctx context.Context, args QueryDatabaseArgs) (any, error) {
	if err := RequireID("database_id", args.DatabaseID); err != nil {
		return nil, err
	}

	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	req := QueryDatabaseRequest{
		PageSize:    pageSize,
		StartCursor: args.StartCursor,
	}
	for _, s := range args.Sorts {
		direction := s.Direction
		if direction == "" {
			direction = "ascending"
		}
		req.Sorts = append(req.Sorts, Sort{Property: s.Property, Direction: direction})
	}
	return c.QueryDatabase(ctx, args.DatabaseID, req)
}

// QueryDatabaseAllMCP drains a database query across all pages.
func (c *Client) QueryDatabaseAllMCP(ctx context.Context, args QueryDatabaseAllArgs) (any, error) {
	if err := RequireID("database_id", args.DatabaseID); err != nil {
		return nil, err
	}

	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	all, err := CollectAll(ctx, func(ctx context.Context, startCursor string) (*PaginatedList, error) {
		return c.QueryDatabase(ctx, args.DatabaseID, QueryDatabaseRequest{
			PageSize:    pageSize,
			StartCursor: startCursor,
		})
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"results": all}, nil
}

// FetchDatabaseMCP retrieves database metadata.
func (c *Client) FetchDatabaseMCP(ctx context.Context, args FetchDatabaseArgs) (any, error) {
	if err := RequireID("database_id", args.DatabaseID); err != nil {
		return nil, err
	}
	return c.GetDatabase(ctx, args.DatabaseID)
}

// FetchRowMCP retrieves a page (row) with all its properties.
func (c *Client) FetchRowMCP(ctx context.Context, args FetchRowArgs) (any, error) {
	if err := RequireID("page_id", args.PageID); err != nil {
		return nil, err
	}
	return c.GetPage(ctx, args.PageID)
}

// UpdateRowMCP updates a row's properties, icon, cover, or archive flag.
// Unlike UpdatePageMCP the archive flag is always sent, defaulting false.
func (c *Client) UpdateRowMCP(ctx context.Context, args UpdateRowArgs) (any, error) {
	if err := RequireID("page_id", args.PageID); err != nil {
		return nil, err
	}

	archived := false
	if args.Archived != nil {
		archived = *args.Archived
	}
	req := UpdatePageRequest{
		Properties: args.Properties,
		Archived:   &archived,
	}
	if args.Icon != "" {
		req.Icon = EmojiIcon(args.Icon)
	}
	if args.Cover != "" {
		req.Cover = ExternalCover(args.Cover)
	}
	return c.UpdatePage(ctx, args.PageID, req)
}

// UpdateDatabaseSchemaMCP updates a database's title, description, or schema.
func (c *Client) UpdateDatabaseSchemaMCP(ctx context.Context, args UpdateDatabaseSchemaArgs) (any, error) {
	if err := RequireID("database_id", args.DatabaseID); err != nil {
		return nil, err
	}

	req := UpdateDatabaseRequest{Properties: args.Properties}
	if args.Title != "" {
		req.Title = TextRun(args.Title)
	}
	if args.Description != "" {
		req.Description = TextRun(args.Description)
	}
	return c.UpdateDatabase(ctx, args.DatabaseID, req)
}

// AddPageContentMCP appends a single block, passed through verbatim.
func (c *Client) AddPageContentMCP(ctx context.Context, args AddPageContentArgs) (any, error) {
	if err := RequireID("parent_block_id", args.ParentBlockID); err != nil {
		return nil, err
	}
	if args.ContentBlock == nil {
		return nil, apierrors.Validationf("content_block must be an object")
	}
	return c.AppendBlockChildren(ctx, args.ParentBlockID, AppendChildrenRequest{
		Children: []map[string]any{args.ContentBlock},
		After:    args.After,
	})
}

// AddMultiplePageContentMCP appends up to 100 blocks. Each block is either
// a full block object (passed through verbatim) or a {content: text}
// shorthand synthesized into a paragraph.
func (c *Client) AddMultiplePageContentMCP(ctx context.Context, args AddMultiplePageContentArgs) (any, error) {
	if err := RequireID("parent_block_id", args.ParentBlockID); err != nil {
		return nil, err
	}
	if err := ValidateBlockList(args.ContentBlocks); err != nil {
		return nil, err
	}

	shaped, err := shapeContentBlocks(args.ContentBlocks)
	if err != nil {
		return nil, err
	}
	return c.AppendBlockChildren(ctx, args.ParentBlockID, AppendChildrenRequest{
		Children: shaped,
		After:    args.After,
	})
}

// AppendBlockChildrenMCP appends up to 100 verbatim block objects.
func (c *Client) AppendBlockChildrenMCP(ctx context.Context, args AppendBlockChildrenArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}
	if err := ValidateBlockList(args.Children); err != nil {
		return nil, err
	}
	return c.AppendBlockChildren(ctx, args.BlockID, AppendChildrenRequest{
		Children: args.Children,
		After:    args.After,
	})
}

// richTextBlockTypes are the block types whose content is a rich_text list.
var richTextBlockTypes = map[string]bool{
	"paragraph":          true,
	"heading_1":          true,
	"heading_2":          true,
	"heading_3":          true,
	"bulleted_list_item": true,
	"numbered_list_item": true,
	"quote":              true,
	"to_do":              true,
}

// UpdateBlockMCP updates a block's typed content. Recognized rich-text
// types get a single text run built from content plus any extra fields;
// unrecognized types require explicit additional properties since no
// default shape exists for them.
func (c *Client) UpdateBlockMCP(ctx context.Context, args UpdateBlockArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}

	body := map[string]any{}
	if richTextBlockTypes[args.BlockType] {
		payload := map[string]any{"rich_text": TextRun(args.Content)}
		for k, v := range args.AdditionalProperties {
			payload[k] = v
		}
		body[args.BlockType] = payload
	} else {
		if len(args.AdditionalProperties) == 0 {
			return nil, apierrors.Validationf("unsupported block_type %q without additional_properties", args.BlockType)
		}
		body[args.BlockType] = args.AdditionalProperties
	}
	return c.UpdateBlock(ctx, args.BlockID, body)
}

// DeleteBlockMCP deletes a block by archiving it.
func (c *Client) DeleteBlockMCP(ctx context.Context, args DeleteBlockArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}
	return c.UpdateBlock(ctx, args.BlockID, map[string]any{"archived": true})
}

// FetchBlockContentsMCP lists one page of a block's children.
func (c *Client) FetchBlockContentsMCP(ctx context.Context, args FetchBlockContentsArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}
	return c.ListBlockChildren(ctx, args.BlockID, args.PageSize, args.StartCursor)
}

// FetchAllBlockContentsMCP drains a block's children across all pages.
func (c *Client) FetchAllBlockContentsMCP(ctx context.Context, args FetchAllBlockContentsArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}

	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	all, err := CollectAll(ctx, func(ctx context.Context, startCursor string) (*PaginatedList, error) {
		return c.ListBlockChildren(ctx, args.BlockID, pageSize, startCursor)
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"results": all}, nil
}

// FetchBlockMetadataMCP retrieves one block's metadata.
func (c *Client) FetchBlockMetadataMCP(ctx context.Context, args FetchBlockMetadataArgs) (any, error) {
	if err := RequireID("block_id", args.BlockID); err != nil {
		return nil, err
	}
	return c.GetBlock(ctx, args.BlockID)
}

// CreateCommentMCP creates a comment, either replying to a discussion or
// starting a new thread on a page.
func (c *Client) CreateCommentMCP(ctx context.Context, args CreateCommentArgs) (any, error) {
	if args.DiscussionID == "" && args.ParentPageID == "" {
		return nil, apierrors.Validationf("either discussion_id or parent_page_id must be provided")
	}

	req := CreateCommentRequest{RichText: TextRun(args.Comment.Content)}
	if args.DiscussionID != "" {
		req.DiscussionID = args.DiscussionID
	} else {
		req.Parent = map[string]any{"type": "page_id", "page_id": args.ParentPageID}
	}
	return c.CreateComment(ctx, req)
}

// GetCommentByIDMCP lists comments under a container (bounded at one
// 100-item page) and scans for a matching identifier.
func (c *Client) GetCommentByIDMCP(ctx context.Context, args GetCommentByIDArgs) (any, error) {
	if args.ParentBlockID == "" || args.CommentID == "" {
		return nil, apierrors.Validationf("parent_block_id and comment_id are required")
	}

	page, err := c.ListComments(ctx, args.ParentBlockID, 100, "")
	if err != nil {
		return nil, err
	}
	for _, comment := range page.Results {
		if id, _ := comment["id"].(string); id == args.CommentID {
			return comment, nil
		}
	}
	return nil, apierrors.NotFoundf("comment with ID %s not found", args.CommentID)
}

// FetchCommentsMCP lists comments under a page or block.
func (c *Client) FetchCommentsMCP(ctx context.Context, args FetchCommentsArgs) (any, error) {
	if args.BlockID == "" {
		return nil, apierrors.Validationf("block_id is required")
	}
	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return c.ListComments(ctx, args.BlockID, pageSize, args.StartCursor)
}

// SearchMCP searches pages and databases by title. An empty query returns
// all accessible items.
func (c *Client) SearchMCP(ctx context.Context, args SearchArgs) (any, error) {
	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return c.Search(ctx, SearchRequest{
		Query:       args.Query,
		PageSize:    pageSize,
		StartCursor: args.StartCursor,
	})
}

// FetchDataMCP fetches pages and/or databases by boolean flags, defaulting
// to pages when no flag is set.
func (c *Client) FetchDataMCP(ctx context.Context, args FetchDataArgs) (any, error) {
	pageSize := args.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	req := SearchRequest{Query: args.Query, PageSize: pageSize}

	switch {
	case args.GetAll:
		// no filter: both pages and databases
	case args.GetDatabases:
		req.Filter = &SearchFilter{Property: "object", Value: "database"}
	default:
		req.Filter = &SearchFilter{Property: "object", Value: "page"}
	}
	return c.Search(ctx, req)
}

// titleKeyOf returns the key of the title-typed property, or "Name" when
// none is flagged.
func titleKeyOf(props map[string]any) string {
	for k, v := range props {
		if prop, ok := v.(map[string]any); ok {
			if _, isTitle := prop["title"]; isTitle {
				return k
			}
		}
	}
	return "Name"
}

// hasTitleProperty reports whether any property in a schema is title-typed.
func hasTitleProperty(props map[string]any) bool {
	for _, v := range props {
		if prop, ok := v.(map[string]any); ok {
			if _, isTitle := prop["title"]; isTitle {
				return true
			}
		}
	}
	return false
}

// pageTitleOf extracts a page's title text by scanning its properties for
// the title-typed one and joining the plain text of its runs.
func pageTitleOf(page Object) string {
	props, ok := page["properties"].(map[string]any)
	if !ok {
		return "Untitled"
	}
	for _, v := range props {
		prop, ok := v.(map[string]any)
		if !ok {
			continue
		}
		runs, ok := prop["title"].([]any)
		if !ok {
			continue
		}
		var b strings.Builder
		for _, r := range runs {
			if run, ok := r.(map[string]any); ok {
				if text, ok := run["plain_text"].(string); ok {
					b.WriteString(text)
				}
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
		return "Untitled"
	}
	return "Untitled"
}

// shapeContentBlocks normalizes a mixed list of full block objects and
// {content: text} shorthands into API-ready block payloads.
func shapeContentBlocks(blocks []map[string]any) ([]map[string]any, error) {
	shaped := make([]map[string]any, 0, len(blocks))
	for _, block := range blocks {
		if obj, _ := block["object"].(string); obj == "block" {
			shaped = append(shaped, block)
			continue
		}
		if content, ok := block["content"]; ok {
			text, _ := content.(string)
			shaped = append(shaped, map[string]any{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]any{
					"rich_text": TextRun(text),
				},
			})
			continue
		}
		return nil, apierrors.Validationf("invalid block format: %v", block)
	}
	return shaped, nil
}
