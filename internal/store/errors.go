package store

import "errors"

var (
	// ErrNotFound is returned when a lifecycle operation names an id
	// the store has never seen.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidTransition is returned when a suggestion is already in
	// a terminal state. The stored state is left untouched.
	ErrInvalidTransition = errors.New("store: invalid transition")

	// ErrBusy is returned when a user turn is submitted while an
	// assistant reply is still outstanding.
	ErrBusy = errors.New("store: conversation busy")
)
