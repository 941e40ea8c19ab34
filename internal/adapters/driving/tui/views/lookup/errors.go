package lookup

import "errors"

// Error definitions for the lookup view.
var (
	// ErrNoLookupService indicates that no lookup service was provided.
	ErrNoLookupService = errors.New("lookup service is required")

	// ErrNoPronunciationService indicates that no pronunciation service was provided.
	ErrNoPronunciationService = errors.New("pronunciation service is required")
)
