// Package domain defines the core business entities for lexi.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DictionaryEntry: One dictionary result for a word
//   - Meaning: Definitions grouped under a part of speech
//   - PhoneticVariant: One transcription/audio rendition of a word
//   - LookupState: The immutable view state of the lookup page
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
