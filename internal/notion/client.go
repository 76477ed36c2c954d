package notion

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/olgasafonova/notion-workspace-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/notion-workspace-mcp-server/internal/errors"
	"github.com/olgasafonova/notion-workspace-mcp-server/internal/infra"
	"github.com/olgasafonova/notion-workspace-mcp-server/metrics"
)

// DefaultCacheTTL for cached read-mostly objects
const DefaultCacheTTL = 5 * time.Minute

// Client provides access to the Notion API.
type Client struct {
	*base.Client
	cfg *Config
}

// ClientOption configures the Client (re-export base.ClientOption)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithCache sets a custom cache
func WithCache(c *infra.Cache) ClientOption {
	return base.WithCache(c)
}

// NewClient creates a new Notion API client. The configured timeout applies
// to the underlying HTTP client; options may still override it.
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	if cfg.Timeout > 0 {
		opts = append([]ClientOption{base.WithTimeout(cfg.Timeout)}, opts...)
	}
	return &Client{
		Client: base.NewClient(opts...),
		cfg:    cfg,
	}
}

// Config returns the client's configuration.
func (c *Client) Config() *Config {
	return c.cfg
}

// call performs one Notion API exchange and decodes the response into out.
// op names the API operation for the log line emitted per call.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()
	err := c.doCall(ctx, method, path, body, out)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAPICall(op, duration, false, apierrors.KindOf(err).String())
		c.Logger.Error("Notion call failed", "operation", op, "error", err)
		return err
	}
	metrics.RecordAPICall(op, duration, true, "")
	c.Logger.Info("Notion call succeeded", "operation", op)
	return nil
}

func (c *Client) doCall(ctx context.Context, method, path string, body, out any) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.Token)
	header.Set("Notion-Version", c.cfg.Version)
	header.Set("User-Agent", c.cfg.UserAgent)

	respBody, statusCode, err := c.Client.Do(ctx, base.Request{
		Method:   method,
		URL:      c.cfg.BaseURL + path,
		Body:     body,
		Header:   header,
		MaxRetry: c.cfg.MaxRetries,
	})
	if err != nil {
		return err
	}

	if statusCode >= 400 {
		// 4xx means the API is healthy and refused this request.
		c.RecordSuccess()
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && (apiErr.Code != "" || apiErr.Message != "") {
			if statusCode == http.StatusNotFound || apiErr.Code == "object_not_found" {
				return apierrors.NotFoundf("%s", apiErr.String())
			}
			return apierrors.Rejectedf("API error %d (%s): %s", statusCode, apiErr.Code, apiErr.Message)
		}
		if statusCode == http.StatusNotFound {
			return apierrors.NotFoundf("object not found")
		}
		return apierrors.Rejectedf("API error %d: %s", statusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			c.RecordFailure()
			return apierrors.New(apierrors.KindUnknown, "failed to parse response: %v", err)
		}
	}

	c.RecordSuccess()
	return nil
}

// listQuery encodes the shared pagination query parameters.
func listQuery(pageSize int, startCursor string) string {
	params := url.Values{}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if startCursor != "" {
		params.Set("start_cursor", startCursor)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// Me retrieves the bot user behind the integration token.
func (c *Client) Me(ctx context.Context) (Object, error) {
	const cacheKey = "users:me"
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(Object), nil
	}
	metrics.RecordCacheAccess(false)

	var result Object
	if err := c.call(ctx, "users.me", http.MethodGet, "/users/me", nil, &result); err != nil {
		return nil, err
	}
	c.Cache.Set(cacheKey, result, DefaultCacheTTL)
	return result, nil
}

// ListUsers lists workspace users, one page per call.
func (c *Client) ListUsers(ctx context.Context, pageSize int, startCursor string) (*PaginatedList, error) {
	var result PaginatedList
	path := "/users" + listQuery(pageSize, startCursor)
	if err := c.call(ctx, "users.list", http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser retrieves one user by identifier.
func (c *Client) GetUser(ctx context.Context, userID string) (Object, error) {
	cacheKey := "users:" + userID
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(Object), nil
	}
	metrics.RecordCacheAccess(false)

	result, _, err := c.Dedup.Do(ctx, cacheKey, func() (any, error) {
		var user Object
		if err := c.call(ctx, "users.retrieve", http.MethodGet, "/users/"+userID, nil, &user); err != nil {
			return nil, err
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}

	user := result.(Object)
	c.Cache.Set(cacheKey, user, DefaultCacheTTL)
	return user, nil
}

// CreatePage creates a page under a page or database parent.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (Object, error) {
	var result Object
	if err := c.call(ctx, "pages.create", http.MethodPost, "/pages", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPage retrieves a page's properties and metadata.
func (c *Client) GetPage(ctx context.Context, pageID string) (Object, error) {
	var result Object
	if err := c.call(ctx, "pages.retrieve", http.MethodGet, "/pages/"+pageID, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdatePage patches a page's properties, icon, cover, or archive flag.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (Object, error) {
	var result Object
	if err := c.call(ctx, "pages.update", http.MethodPatch, "/pages/"+pageID, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPageProperty retrieves a single property value; multi-valued
// properties paginate via pageSize and startCursor.
func (c *Client) GetPageProperty(ctx context.Context, pageID, propertyID string, pageSize int, startCursor string) (Object, error) {
	var result Object
	path := "/pages/" + pageID + "/properties/" + url.PathEscape(propertyID) + listQuery(pageSize, startCursor)
	if err := c.call(ctx, "pages.properties.retrieve", http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateDatabase creates a database under a parent page.
func (c *Client) CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (Object, error) {
	var result Object
	if err := c.call(ctx, "databases.create", http.MethodPost, "/databases", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDatabase retrieves database metadata including its schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (Object, error) {
	cacheKey := "databases:" + databaseID
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(Object), nil
	}
	metrics.RecordCacheAccess(false)

	var result Object
	if err := c.call(ctx, "databases.retrieve", http.MethodGet, "/databases/"+databaseID, nil, &result); err != nil {
		return nil, err
	}
	c.Cache.Set(cacheKey, result, DefaultCacheTTL)
	return result, nil
}

// UpdateDatabase patches a database's title, description, or schema.
func (c *Client) UpdateDatabase(ctx context.Context, databaseID string, req UpdateDatabaseRequest) (Object, error) {
	c.Cache.Delete("databases:" + databaseID)
	var result Object
	if err := c.call(ctx, "databases.update", http.MethodPatch, "/databases/"+databaseID, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// QueryDatabase returns one page of rows from a database.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryDatabaseRequest) (*PaginatedList, error) {
	var result PaginatedList
	if err := c.call(ctx, "databases.query", http.MethodPost, "/databases/"+databaseID+"/query", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AppendBlockChildren appends content blocks to a page or block.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, req AppendChildrenRequest) (Object, error) {
	var result Object
	if err := c.call(ctx, "blocks.children.append", http.MethodPatch, "/blocks/"+blockID+"/children", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBlock retrieves one block's metadata.
func (c *Client) GetBlock(ctx context.Context, blockID string) (Object, error) {
	var result Object
	if err := c.call(ctx, "blocks.retrieve", http.MethodGet, "/blocks/"+blockID, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateBlock patches a block's typed content or archive flag. The body is
// keyed by block type, so it stays an open mapping.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, body map[string]any) (Object, error) {
	var result Object
	if err := c.call(ctx, "blocks.update", http.MethodPatch, "/blocks/"+blockID, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListBlockChildren returns one page of a block's children.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string, pageSize int, startCursor string) (*PaginatedList, error) {
	var result PaginatedList
	path := "/blocks/" + blockID + "/children" + listQuery(pageSize, startCursor)
	if err := c.call(ctx, "blocks.children.list", http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateComment creates a comment on a page or in a discussion thread.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (Object, error) {
	var result Object
	if err := c.call(ctx, "comments.create", http.MethodPost, "/comments", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListComments returns one page of comments under a page or block.
func (c *Client) ListComments(ctx context.Context, blockID string, pageSize int, startCursor string) (*PaginatedList, error) {
	params := url.Values{}
	params.Set("block_id", blockID)
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if startCursor != "" {
		params.Set("start_cursor", startCursor)
	}
	var result PaginatedList
	if err := c.call(ctx, "comments.list", http.MethodGet, "/comments?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search searches pages and databases by title.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*PaginatedList, error) {
	var result PaginatedList
	if err := c.call(ctx, "search", http.MethodPost, "/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
