package driving

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
// Every method returns at most count results, in server order.
type SearchService interface {
	// Books searches Book Search.
	Books(ctx context.Context, keyword string, count int, opts domain.BookOptions) ([]*domain.Book, error)

	// News searches News Search.
	News(ctx context.Context, keyword string, count int, opts domain.NewsOptions) ([]*domain.News, error)

	// Videos searches Video Search.
	Videos(ctx context.Context, keyword string, count int, opts domain.VideoOptions) ([]*domain.Video, error)

	// Web searches Web Search.
	Web(ctx context.Context, keyword string, count int, opts domain.WebOptions) ([]*domain.Web, error)

	// Images searches Image Search.
	Images(ctx context.Context, keyword string, count int, opts domain.ImageOptions) ([]*domain.Image, error)

	// Local searches Local Search.
	Local(ctx context.Context, keyword string, count int, opts domain.LocalOptions) ([]*domain.Local, error)

	// Patents searches Patent Search.
	Patents(ctx context.Context, keyword string, count int, opts domain.PatentOptions) ([]*domain.Patent, error)

	// Search runs an unfiltered search of the given kind.
	Search(ctx context.Context, kind domain.Kind, keyword string, count int) ([]domain.Item, error)
}
