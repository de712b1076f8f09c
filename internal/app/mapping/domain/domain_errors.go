package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrNoCompanyCodes means the configured entity allow-list resolved to
	// zero company codes. Resolution cannot produce meaningful output with
	// no keys to join against, so this aborts the run.
	ErrNoCompanyCodes = errors.New("no company codes resolved from entity allow-list")

	// ErrNoEntities means the entity allow-list itself is empty.
	ErrNoEntities = errors.New("entity allow-list is empty")
)
