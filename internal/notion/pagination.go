package notion

import "context"

// PageFetcher returns one page of a cursor-paginated listing. startCursor
// is empty for the first page.
type PageFetcher func(ctx context.Context, startCursor string) (*PaginatedList, error)

// CollectAll drains a paginated listing by calling fetch with an advancing
// cursor until the API reports no further pages. Pages are appended in
// response order. On any page failure the error is returned unchanged and
// the partial accumulation is discarded.
func CollectAll(ctx context.Context, fetch PageFetcher) ([]Object, error) {
	all := []Object{}
	cursor := ""
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if page.NextCursor == nil || *page.NextCursor == "" {
			return all, nil
		}
		cursor = *page.NextCursor
	}
}
