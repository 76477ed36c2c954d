// Command benchmark measures cache and API performance against a live
// Notion workspace. Requires NOTION_TOKEN.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/notion-workspace-mcp-server/internal/notion"
)

func main() {
	fmt.Println("Notion Workspace MCP Server - Performance Measurements")
	fmt.Println("======================================================")
	fmt.Println()

	config, err := notion.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := notion.NewClient(config, notion.WithLogger(logger))
	defer client.Close()
	ctx := context.Background()

	measureCachePerformance(ctx, client)
	measureSearchPerformance(ctx, client)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key behaviors:")
	fmt.Println("• Caching: repeated bot-user and database lookups are served from memory")
	fmt.Println("• Deduplication: concurrent identical lookups share one API call")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}

func measureCachePerformance(ctx context.Context, client *notion.Client) {
	fmt.Println("=== Cache Performance Test ===")
	fmt.Println()

	fmt.Println("1. Bot User Cache Test:")
	start := time.Now()
	if _, err := client.Me(ctx); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (network):  %v\n", firstCall)

	start = time.Now()
	_, _ = client.Me(ctx)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (cached):  %v\n", secondCall)
	if secondCall > 0 {
		fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	}
	fmt.Println()
}

func measureSearchPerformance(ctx context.Context, client *notion.Client) {
	fmt.Println("2. Search Performance (baseline, no caching):")
	start := time.Now()
	page, err := client.Search(ctx, notion.SearchRequest{PageSize: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Search time: %v\n", time.Since(start))
	fmt.Printf("   Results: %d (has_more=%v)\n", len(page.Results), page.HasMore)
	fmt.Println()
}
