// Package dictionaryapi implements driven.DictionaryClient against the free
// dictionary API (https://dictionaryapi.dev).
//
// A lookup is a single GET of {base}/{term}. The term is percent-encoded as
// one path segment. A 200 response carries a JSON array of entries; a 404
// means the word is unknown and is reported as domain.ErrNotFound.
package dictionaryapi
