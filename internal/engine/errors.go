package engine

import "errors"

var (
	// ErrInvalidChar indicates the substitution character is not usable:
	// it is not exactly one character, or is itself outside the allowed set.
	ErrInvalidChar = errors.New("invalid substitution character")

	// ErrNotFound indicates an input path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrCollision indicates an entry's candidate name already exists
	// among its siblings.
	ErrCollision = errors.New("name collision")
)
