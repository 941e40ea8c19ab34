package tui

import "errors"

// ErrMissingController is returned when the lookup controller is not provided.
var ErrMissingController = errors.New("tui: lookup controller is required")

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("tui: lookup service is required")

// ErrMissingPronunciationService is returned when the pronunciation service is not provided.
var ErrMissingPronunciationService = errors.New("tui: pronunciation service is required")
