package tools

import (
	"strings"
	"testing"
)

// knownMethods mirrors the dispatch table in registerByName. A spec whose
// Method is missing here would silently fail to register.
var knownMethods = map[string]bool{
	"GetAboutMe":             true,
	"ListUsers":              true,
	"GetAboutUser":           true,
	"CreatePage":             true,
	"UpdatePage":             true,
	"GetPageProperty":        true,
	"ArchivePage":            true,
	"ListPages":              true,
	"CreateDatabase":         true,
	"InsertRow":              true,
	"QueryDatabase":          true,
	"QueryDatabaseAll":       true,
	"FetchDatabase":          true,
	"FetchRow":               true,
	"UpdateRow":              true,
	"UpdateDatabaseSchema":   true,
	"AddPageContent":         true,
	"AddMultiplePageContent": true,
	"AppendBlockChildren":    true,
	"UpdateBlock":            true,
	"DeleteBlock":            true,
	"FetchBlockContents":     true,
	"FetchAllBlockContents":  true,
	"FetchBlockMetadata":     true,
	"CreateComment":          true,
	"GetCommentByID":         true,
	"FetchComments":          true,
	"Search":                 true,
	"FetchData":              true,
}

func TestToolNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecsComplete(t *testing.T) {
	for _, spec := range AllTools {
		if !strings.HasPrefix(spec.Name, "notion_") {
			t.Errorf("%s: tool names use the notion_ prefix", spec.Name)
		}
		if spec.Method == "" {
			t.Errorf("%s: missing Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("%s: missing Description", spec.Name)
		}
		if spec.Title == "" {
			t.Errorf("%s: missing Title", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("%s: missing Category", spec.Name)
		}
	}
}

func TestToolMethodsDispatchable(t *testing.T) {
	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("%s: method %s has no dispatch case", spec.Name, spec.Method)
		}
	}
	if len(AllTools) != len(knownMethods) {
		t.Errorf("tool count = %d, dispatch cases = %d", len(AllTools), len(knownMethods))
	}
}

func TestToolCategories(t *testing.T) {
	valid := map[string]bool{
		"users": true, "pages": true, "databases": true,
		"blocks": true, "comments": true, "search": true,
	}
	for _, spec := range AllTools {
		if !valid[spec.Category] {
			t.Errorf("%s: unexpected category %q", spec.Name, spec.Category)
		}
	}
}

func TestReadOnlyToolsNotDestructive(t *testing.T) {
	for _, spec := range AllTools {
		if spec.ReadOnly && spec.Destructive {
			t.Errorf("%s: read-only tools cannot be destructive", spec.Name)
		}
	}
}

func TestDestructiveToolsMarked(t *testing.T) {
	// Archival and deletion tools must carry the destructive hint so
	// clients can require confirmation before invoking them.
	mustBeDestructive := []string{"notion_archive_page", "notion_delete_block"}
	byName := make(map[string]ToolSpec)
	for _, spec := range AllTools {
		byName[spec.Name] = spec
	}
	for _, name := range mustBeDestructive {
		spec, ok := byName[name]
		if !ok {
			t.Errorf("tool %s not defined", name)
			continue
		}
		if !spec.Destructive {
			t.Errorf("%s should be marked destructive", name)
		}
	}
}

func TestToolDescriptionsGuideSelection(t *testing.T) {
	for _, spec := range AllTools {
		if !strings.Contains(spec.Description, "USE WHEN") {
			t.Errorf("%s: description should state when to use the tool", spec.Name)
		}
	}
}
