package notion

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the Notion REST API root.
const DefaultBaseURL = "https://api.notion.com/v1"

// DefaultVersion is the Notion-Version header sent with every request.
const DefaultVersion = "2022-06-28"

// Config holds Notion API connection settings.
type Config struct {
	// Token is the integration's bearer credential. Required.
	Token string

	// BaseURL is the API root, overridable for tests.
	BaseURL string

	// Version is the Notion-Version header value.
	Version string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string

	// MaxRetries for failed requests
	MaxRetries int
}

// LoadConfig loads configuration from environment variables. A missing
// NOTION_TOKEN is a fatal startup condition; there is no degraded mode.
func LoadConfig() (*Config, error) {
	token := os.Getenv("NOTION_TOKEN")
	if token == "" {
		return nil, errors.New("NOTION_TOKEN environment variable is required")
	}

	baseURL := os.Getenv("NOTION_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	version := os.Getenv("NOTION_VERSION")
	if version == "" {
		version = DefaultVersion
	}

	timeout := 30 * time.Second
	if t := os.Getenv("NOTION_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	maxRetries := 3
	if r := os.Getenv("NOTION_MAX_RETRIES"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n >= 0 {
			maxRetries = n
		}
	}

	userAgent := os.Getenv("NOTION_USER_AGENT")
	if userAgent == "" {
		userAgent = "notion-workspace-mcp-server/1.0 (https://github.com/olgasafonova/notion-workspace-mcp-server)"
	}

	return &Config{
		Token:      token,
		BaseURL:    baseURL,
		Version:    version,
		Timeout:    timeout,
		UserAgent:  userAgent,
		MaxRetries: maxRetries,
	}, nil
}
