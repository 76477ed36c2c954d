package evals

import "strings"

// KeywordSelector is a deterministic baseline ToolSelector driven by phrase
// matching. It sets a floor for LLM evaluation runs: an LLM that scores
// below the baseline on tool selection is misreading the tool descriptions.
type KeywordSelector struct{}

// rules map indicator phrases to tool names, checked in order. More
// specific phrases come first.
var rules = []struct {
	phrases []string
	tool    string
}{
	{[]string{"who am i", "which integration", "bot user"}, "notion_get_about_me"},
	{[]string{"who is user", "details for user", "user's email"}, "notion_get_about_user"},
	{[]string{"list users", "who is in", "workspace members", "all members"}, "notion_list_users"},

	{[]string{"archive page", "delete page", "move page to trash", "restore page"}, "notion_archive_page"},
	{[]string{"rename page", "change the icon", "update page", "set the cover"}, "notion_update_page"},
	{[]string{"create a page", "new page", "add a page"}, "notion_create_page"},
	{[]string{"list pages", "what pages", "all pages"}, "notion_list_pages"},
	{[]string{"property value", "page property"}, "notion_get_page_property"},

	{[]string{"create a database", "new database", "set up a tracker", "create a table"}, "notion_create_database"},
	{[]string{"add an entry", "insert a row", "add a row", "new entry"}, "notion_insert_row_database"},
	{[]string{"all rows", "every row", "whole database", "export the database"}, "notion_query_database_all"},
	{[]string{"query the database", "first rows", "rows sorted"}, "notion_query_database"},
	{[]string{"what columns", "database schema", "database metadata"}, "notion_fetch_database"},
	{[]string{"add a column", "rename the database", "change the schema"}, "notion_update_schema_database"},
	{[]string{"update the row", "change the status", "archive the row"}, "notion_update_row_database"},
	{[]string{"details of entry", "show the row"}, "notion_fetch_row"},

	{[]string{"delete block", "remove that paragraph", "remove block"}, "notion_delete_block"},
	{[]string{"change that paragraph", "fix the heading", "update block", "check off"}, "notion_update_block"},
	{[]string{"add these blocks", "several paragraphs", "multiple blocks"}, "notion_add_multiple_page_content"},
	{[]string{"append raw blocks", "nested blocks"}, "notion_append_block_children"},
	{[]string{"add a paragraph", "add a heading", "add a to-do"}, "notion_add_page_content"},
	{[]string{"entire page", "read the whole page", "all content"}, "notion_fetch_all_block_contents"},
	{[]string{"block metadata", "block type"}, "notion_fetch_block_metadata"},
	{[]string{"what's on page", "read the content", "page content"}, "notion_fetch_block_contents"},

	{[]string{"reply to", "comment on", "add a comment"}, "notion_create_comment"},
	{[]string{"that specific comment", "comment with id"}, "notion_get_comment_by_id"},
	{[]string{"what comments", "show the discussion", "list comments"}, "notion_fetch_comments"},

	{[]string{"list my databases", "everything i have access"}, "notion_fetch_data"},
	{[]string{"find", "search", "is there a page"}, "notion_search"},
}

// SelectTool matches the input against the phrase rules. Arguments are not
// extracted; argument checks always fail against this baseline.
func (KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	lower := strings.ToLower(input)
	for _, rule := range rules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.tool, map[string]any{}, nil
			}
		}
	}
	return "notion_search", map[string]any{}, nil
}
