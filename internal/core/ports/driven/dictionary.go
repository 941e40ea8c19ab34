package driven

import (
	"context"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// DictionaryClient fetches dictionary entries from a remote source.
//
// Implementations must map outcomes onto domain errors:
//   - HTTP 404 returns an error matching domain.ErrNotFound
//   - any other non-2xx status returns a *domain.StatusError
//   - a malformed body returns an error matching domain.ErrDecode
type DictionaryClient interface {
	// Lookup returns the entries for term, in response order.
	Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error)
}

// ConfigurableClient is a DictionaryClient whose settings can change at runtime.
type ConfigurableClient interface {
	DictionaryClient

	// Configure applies new API settings to subsequent requests.
	Configure(settings domain.APISettings) error
}
