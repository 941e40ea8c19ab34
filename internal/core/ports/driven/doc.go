// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DictionaryClient: Fetches entries from the remote dictionary API
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AudioPlayer: Plays pronunciation recordings. Without it, play is a no-op.
//   - ConfigWatcher: Signals configuration changes. Without it, settings are read once.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or driving package
package driven
