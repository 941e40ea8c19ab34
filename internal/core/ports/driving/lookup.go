package driving

import (
	"context"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// LookupService looks words up in the dictionary.
type LookupService interface {
	// Lookup returns the entries for term. A term the dictionary does not
	// know returns an error matching domain.ErrNotFound.
	Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error)
}

// LookupController holds the state of the lookup page.
type LookupController interface {
	// SetTerm replaces the current search text.
	SetTerm(term string)

	// Term returns the current search text.
	Term() string

	// State returns the current view state.
	State() domain.LookupState

	// Begin starts a new lookup for the current term. The previous result
	// and not-found state are cleared. The returned ticket identifies the
	// request in Resolve.
	Begin() (domain.Ticket, string)

	// Resolve applies the outcome of the lookup identified by ticket.
	// Outcomes of superseded tickets are discarded; the return value
	// reports whether the state changed.
	Resolve(ticket domain.Ticket, entries []domain.DictionaryEntry, err error) bool

	// Submit runs Begin, the lookup and Resolve, returning the new state.
	Submit(ctx context.Context) domain.LookupState
}
