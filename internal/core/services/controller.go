package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure LookupController implements the interface.
var _ driving.LookupController = (*LookupController)(nil)

// LookupController holds the search text and view state of the lookup page.
// It is safe for concurrent use.
type LookupController struct {
	lookup driving.LookupService

	mu     sync.Mutex
	term   string
	state  domain.LookupState
	latest domain.Ticket

	newTicket func() domain.Ticket
}

// NewLookupController creates a controller in the idle state.
func NewLookupController(lookup driving.LookupService) *LookupController {
	return &LookupController{
		lookup: lookup,
		state:  domain.Idle(),
		newTicket: func() domain.Ticket {
			return domain.Ticket(uuid.NewString())
		},
	}
}

// SetTerm replaces the current search text.
func (c *LookupController) SetTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = term
}

// Term returns the current search text.
func (c *LookupController) Term() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.term
}

// State returns the current view state.
func (c *LookupController) State() domain.LookupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin moves to the loading state for the current term and issues a ticket.
// Any earlier ticket becomes stale.
func (c *LookupController) Begin() (domain.Ticket, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ticket := c.newTicket()
	c.latest = ticket
	c.state = domain.Loading(ticket, c.term)
	return ticket, c.term
}

// Resolve applies the outcome of the lookup identified by ticket.
// Returns false if ticket is not the latest one.
func (c *LookupController) Resolve(ticket domain.Ticket, entries []domain.DictionaryEntry, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket == "" || ticket != c.latest {
		logger.Debug("Dropping stale lookup result (ticket %s)", ticket)
		return false
	}

	term := c.state.Term()
	switch {
	case err == nil:
		c.state = domain.Loaded(ticket, term, entries)
	case errors.Is(err, domain.ErrNotFound):
		c.state = domain.NotFound(ticket, term)
	default:
		logger.Error("lookup %q failed: %v", term, err)
		c.state = domain.Failed(ticket, term, err)
	}
	return true
}

// Submit looks up the current term and returns the resulting state.
// Failures are reported through the state, never returned.
func (c *LookupController) Submit(ctx context.Context) domain.LookupState {
	ticket, term := c.Begin()

	entries, err := c.lookup.Lookup(ctx, term)
	c.Resolve(ticket, entries, err)

	return c.State()
}
