package notion

import (
	"regexp"

	apierrors "github.com/olgasafonova/notion-workspace-mcp-server/internal/errors"
)

// idRegex matches Notion object identifiers: 32-36 characters of hex
// digits and dashes. Deliberately looser than canonical UUID grouping;
// the API itself rejects well-formed identifiers that resolve to nothing.
var idRegex = regexp.MustCompile(`^[0-9a-fA-F-]{32,36}$`)

// ValidateID reports whether s is shaped like a Notion object identifier.
// The check is syntactic only.
func ValidateID(s string) bool {
	return idRegex.MatchString(s)
}

// RequireID returns a validation error when value is not identifier-shaped.
// field names the argument in the error message.
func RequireID(field, value string) error {
	if !ValidateID(value) {
		return apierrors.Validationf("invalid %s format: %q must be 32-36 hex digits or dashes", field, value)
	}
	return nil
}

// MaxBlocksPerAppend is the Notion API limit on blocks per append call.
const MaxBlocksPerAppend = 100

// ValidateBlockList checks the bounds on a content block list before any
// network call is made.
func ValidateBlockList(blocks []map[string]any) error {
	if len(blocks) == 0 {
		return apierrors.Validationf("content blocks must be a non-empty list")
	}
	if len(blocks) > MaxBlocksPerAppend {
		return apierrors.Validationf("maximum %d blocks per request, got %d", MaxBlocksPerAppend, len(blocks))
	}
	return nil
}
