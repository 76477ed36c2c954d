// Command evals runs MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -suite ./evals/tool_selection.json
//
// By default the deterministic keyword baseline is evaluated. For LLM
// evaluation, implement evals.ToolSelector against your harness and call
// evals.Evaluate with it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olgasafonova/notion-workspace-mcp-server/evals"
)

func main() {
	suitePath := flag.String("suite", "./evals/tool_selection.json", "Path to the tool selection suite")
	verbose := flag.Bool("verbose", false, "Show per-test results")
	flag.Parse()

	fmt.Println("Notion Workspace MCP Server - Evaluation Framework")
	fmt.Println("==================================================")

	suite, err := evals.LoadSuite(*suitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading suite: %v\n", err)
		os.Exit(1)
	}

	metrics, results := evals.Evaluate(suite, evals.KeywordSelector{})
	fmt.Print(evals.FormatMetrics(metrics, suite.Name+" (keyword baseline)"))

	if *verbose {
		fmt.Println("\nPer-test results:")
		for _, r := range results {
			status := "PASS"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Printf("  [%s] %s: %s -> %s\n", status, r.TestID, r.Input, r.ActualTool)
		}
	}

	if metrics.FailedTests > 0 {
		os.Exit(1)
	}
}
