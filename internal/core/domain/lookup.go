package domain

// LookupStatus is the display mode of the lookup page.
type LookupStatus string

// Lookup statuses. Exactly one holds at a time.
const (
	// StatusIdle means no search has been submitted yet.
	StatusIdle LookupStatus = "idle"

	// StatusLoading means a search is in flight.
	StatusLoading LookupStatus = "loading"

	// StatusNotFound means the dictionary reported no entries (HTTP 404).
	StatusNotFound LookupStatus = "not_found"

	// StatusFailed means the lookup failed for any other reason.
	StatusFailed LookupStatus = "failed"

	// StatusLoaded means entries were decoded from a successful response.
	StatusLoaded LookupStatus = "loaded"
)

// String returns the string representation.
func (s LookupStatus) String() string {
	return string(s)
}

// Ticket identifies one issued lookup request.
// Only the most recently issued ticket may change the lookup state.
type Ticket string

// LookupState is an immutable snapshot of the lookup page.
// Construct it with the Idle, Loading, NotFound, Failed and Loaded functions;
// they guarantee that entries are only present for StatusLoaded and an error
// only for StatusFailed.
type LookupState struct {
	status  LookupStatus
	term    string
	ticket  Ticket
	entries []DictionaryEntry
	err     error
}

// Idle returns the initial state.
func Idle() LookupState {
	return LookupState{status: StatusIdle}
}

// Loading returns the state of an in-flight lookup for term.
func Loading(ticket Ticket, term string) LookupState {
	return LookupState{status: StatusLoading, ticket: ticket, term: term}
}

// NotFound returns the state of a lookup the dictionary has no entries for.
func NotFound(ticket Ticket, term string) LookupState {
	return LookupState{status: StatusNotFound, ticket: ticket, term: term}
}

// Failed returns the state of a lookup that failed with err.
func Failed(ticket Ticket, term string, err error) LookupState {
	return LookupState{status: StatusFailed, ticket: ticket, term: term, err: err}
}

// Loaded returns the state of a successful lookup.
// A nil slice is normalised to an empty one.
func Loaded(ticket Ticket, term string, entries []DictionaryEntry) LookupState {
	if entries == nil {
		entries = []DictionaryEntry{}
	}
	return LookupState{status: StatusLoaded, ticket: ticket, term: term, entries: entries}
}

// Status returns the display mode.
func (s LookupState) Status() LookupStatus {
	if s.status == "" {
		return StatusIdle
	}
	return s.status
}

// Term returns the search term the state belongs to.
func (s LookupState) Term() string {
	return s.term
}

// Ticket returns the request ticket the state belongs to.
func (s LookupState) Ticket() Ticket {
	return s.ticket
}

// Entries returns the decoded entries. Nil unless the status is StatusLoaded.
func (s LookupState) Entries() []DictionaryEntry {
	if s.Status() != StatusLoaded {
		return nil
	}
	return s.entries
}

// Err returns the failure. Nil unless the status is StatusFailed.
func (s LookupState) Err() error {
	if s.Status() != StatusFailed {
		return nil
	}
	return s.err
}

// IsNotFound returns true if the not-found message should be displayed.
func (s LookupState) IsNotFound() bool {
	return s.Status() == StatusNotFound
}

// IsLoading returns true while a lookup is in flight.
func (s LookupState) IsLoading() bool {
	return s.Status() == StatusLoading
}
