package domain

import "errors"

var (
	// ErrNotFound is returned when no link exists for an alias.
	ErrNotFound = errors.New("link not found")

	// ErrDuplicateAlias is returned when inserting an alias that is already taken.
	ErrDuplicateAlias = errors.New("alias already exists")

	// ErrInvalidURL is returned when a target is not an absolute URL with scheme and host.
	ErrInvalidURL = errors.New("invalid target url")

	// ErrInvalidAlias is returned when an alias cannot be used as a path segment.
	ErrInvalidAlias = errors.New("invalid alias")
)
