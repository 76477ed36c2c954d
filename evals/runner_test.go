package evals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubSelector returns a fixed tool and args for every input.
type stubSelector struct {
	tool string
	args map[string]any
}

func (s stubSelector) SelectTool(string) (string, map[string]any, error) {
	return s.tool, s.args, nil
}

func TestEvaluateCountsPassesAndFailures(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "test",
		Tests: []ToolSelectionTest{
			{ID: "t1", Category: "search", Input: "find x", ExpectedTool: "notion_search"},
			{ID: "t2", Category: "pages", Input: "make y", ExpectedTool: "notion_create_page"},
		},
	}

	metrics, results := Evaluate(suite, stubSelector{tool: "notion_search"})

	if metrics.TotalTests != 2 {
		t.Errorf("TotalTests = %d, want 2", metrics.TotalTests)
	}
	if metrics.PassedTests != 1 || metrics.FailedTests != 1 {
		t.Errorf("passed/failed = %d/%d, want 1/1", metrics.PassedTests, metrics.FailedTests)
	}
	if metrics.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", metrics.Accuracy)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !results[0].Passed || results[1].Passed {
		t.Errorf("results passed = %v/%v, want true/false", results[0].Passed, results[1].Passed)
	}
	if metrics.ByCategory["pages"].Failed != 1 {
		t.Errorf("pages failed = %d, want 1", metrics.ByCategory["pages"].Failed)
	}
}

func TestEvaluateForbiddenTool(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{{
			ID:           "t1",
			Category:     "pages",
			Input:        "show me the page",
			ExpectedTool: "notion_fetch_block_contents",
			NotTools:     []string{"notion_search"},
		}},
	}

	metrics, results := Evaluate(suite, stubSelector{tool: "notion_search"})

	if metrics.FailedTests != 1 {
		t.Fatalf("FailedTests = %d, want 1", metrics.FailedTests)
	}
	joined := strings.Join(results[0].Errors, "; ")
	if !strings.Contains(joined, "forbidden") {
		t.Errorf("errors %q should mention the forbidden tool", joined)
	}
}

func TestEvaluateChecksArgs(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{{
			ID:           "t1",
			Category:     "databases",
			Input:        "first 5 rows",
			ExpectedTool: "notion_query_database",
			ExpectedArgs: map[string]any{"page_size": 5, "database_id": "abc"},
		}},
	}

	// JSON-decoded args arrive as float64; int expectations must still match.
	selector := stubSelector{
		tool: "notion_query_database",
		args: map[string]any{"page_size": float64(5), "database_id": "abc"},
	}
	metrics, _ := Evaluate(suite, selector)
	if metrics.PassedTests != 1 {
		t.Errorf("numeric widening should not fail the arg check")
	}

	selector.args = map[string]any{"page_size": float64(10)}
	metrics, results := Evaluate(suite, selector)
	if metrics.FailedTests != 1 {
		t.Fatal("wrong and missing args should fail")
	}
	joined := strings.Join(results[0].Errors, "; ")
	if !strings.Contains(joined, "wrong arg page_size") {
		t.Errorf("errors %q should name the wrong arg", joined)
	}
	if !strings.Contains(joined, "missing arg database_id") {
		t.Errorf("errors %q should name the missing arg", joined)
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"int vs float64", 5, float64(5), true},
		{"int vs wrong float64", 5, float64(6), false},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, "x", false},
		{"equal slices", []any{"a", "b"}, []any{"a", "b"}, true},
		{"slice length mismatch", []any{"a"}, []any{"a", "b"}, false},
		{"slice with numbers", []any{1, 2}, []any{float64(1), float64(2)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.json")
	data := `{
		"name": "mini",
		"version": "1.0",
		"tests": [
			{"id": "t1", "category": "search", "input": "find x", "expected_tool": "notion_search"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite failed: %v", err)
	}
	if suite.Name != "mini" || len(suite.Tests) != 1 {
		t.Errorf("suite = %+v", suite)
	}
	if suite.Tests[0].ExpectedTool != "notion_search" {
		t.Errorf("ExpectedTool = %q", suite.Tests[0].ExpectedTool)
	}

	if _, err := LoadSuite(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &Metrics{
		TotalTests:  4,
		PassedTests: 3,
		FailedTests: 1,
		Accuracy:    0.75,
		ByCategory: map[string]*CategoryMetrics{
			"pages":  {Total: 2, Passed: 2},
			"blocks": {Total: 2, Passed: 1, Failed: 1},
		},
		FailedDetails: []string{"[b1] update the heading: wrong tool"},
	}

	out := FormatMetrics(metrics, "Tool Selection")
	for _, want := range []string{"Tool Selection", "4 tests", "75.0%", "pages", "blocks", "[b1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestKeywordSelectorBaseline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Who am I connected as?", "notion_get_about_me"},
		{"List users in the workspace", "notion_list_users"},
		{"Create a page called Roadmap", "notion_create_page"},
		{"Archive page 5993", "notion_archive_page"},
		{"Export the database to review offline", "notion_query_database_all"},
		{"Add a comment saying looks good", "notion_create_comment"},
		{"completely unrelated gibberish", "notion_search"},
	}
	var selector KeywordSelector
	for _, tt := range tests {
		got, _, err := selector.SelectTool(tt.input)
		if err != nil {
			t.Fatalf("SelectTool(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("SelectTool(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBundledSuitePassesBaseline(t *testing.T) {
	suite, err := LoadSuite("tool_selection.json")
	if err != nil {
		t.Fatalf("loading bundled suite: %v", err)
	}
	if len(suite.Tests) == 0 {
		t.Fatal("bundled suite is empty")
	}

	metrics, _ := Evaluate(suite, KeywordSelector{})
	if metrics.FailedTests > 0 {
		t.Errorf("baseline failed %d cases:\n%s", metrics.FailedTests,
			strings.Join(metrics.FailedDetails, "\n"))
	}
}
