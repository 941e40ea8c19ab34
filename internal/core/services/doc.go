// Package services implements the driving port interfaces.
// Services contain the core lookup logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO and no I/O of their own.
package services
