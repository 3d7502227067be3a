package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// FetchPageFunc fetches one page starting at offset in the given tier.
type FetchPageFunc[T any] func(ctx context.Context, offset int, size domain.ResultSize) (domain.Envelope[T], error)

// FetchAll accumulates up to requested results across pages.
//
// Pages are requested in the large tier while more than caps.Small results
// are still missing, and in the small tier otherwise. Collection stops at
// the first empty page, once the server's estimate is reached, once the
// next offset would pass caps.MaxOffset, or once requested results are in
// hand. The result preserves page order and never exceeds requested.
//
// Any fetch error aborts the whole search; no partial result is returned.
func FetchAll[T any](ctx context.Context, requested int, caps domain.PageCaps, fetch FetchPageFunc[T]) ([]T, error) {
	if requested < 0 {
		return nil, fmt.Errorf("%w: requested count %d is negative", domain.ErrInvalidArgument, requested)
	}
	if requested == 0 {
		return []T{}, nil
	}

	collected := make([]T, 0, requested)
	offset := 0

	for {
		size := caps.TierFor(requested - len(collected))

		page, err := fetch(ctx, offset, size)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}

		logger.Debug("Page offset=%d size=%s items=%d estimate=%d",
			offset, size, len(page.Items), page.EstimatedTotal)

		if len(page.Items) == 0 {
			break
		}
		collected = append(collected, page.Items...)

		if len(collected) >= requested {
			break
		}

		next := offset + len(page.Items)
		if page.HasEstimate() && next >= page.EstimatedTotal {
			logger.Debug("Reached estimated total %d", page.EstimatedTotal)
			break
		}
		if caps.MaxOffset > 0 && next > caps.MaxOffset {
			logger.Debug("Next offset %d exceeds maximum %d", next, caps.MaxOffset)
			break
		}
		offset = next
	}

	if len(collected) > requested {
		collected = collected[:requested]
	}
	return collected, nil
}
