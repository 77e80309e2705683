// Package errors provides the structured error type shared by itkit packages.
//
// Ordinary sequence exhaustion is never an error in itkit; AppError covers the
// remaining cases: broken internal invariants (raised as panics by the
// peekable adapters), failing fallible sources and invalid settings.
package errors
