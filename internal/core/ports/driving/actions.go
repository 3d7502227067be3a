package driving

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by the TUI.
type ResultActionService interface {
	// CopyURL copies the result's URL to the system clipboard.
	CopyURL(ctx context.Context, item domain.Item) error

	// OpenURL opens the result's URL in the default browser.
	OpenURL(ctx context.Context, item domain.Item) error
}
