package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService queries the dictionary through a driven client.
type LookupService struct {
	client driven.DictionaryClient
}

// NewLookupService creates a new lookup service.
func NewLookupService(client driven.DictionaryClient) *LookupService {
	return &LookupService{client: client}
}

// Lookup returns the entries for term. The term is forwarded as typed,
// including the empty string.
func (s *LookupService) Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error) {
	logger.Section("Lookup")
	logger.Debug("Term: %q", term)

	entries, err := s.client.Lookup(ctx, term)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("No definitions for %q", term)
			return nil, err
		}
		return nil, fmt.Errorf("lookup %q: %w", term, err)
	}

	if entries == nil {
		entries = []domain.DictionaryEntry{}
	}
	logger.Debug("Entries: %d", len(entries))
	return entries, nil
}
