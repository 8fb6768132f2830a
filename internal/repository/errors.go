package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateID is returned when an entity with the same ID has
	// already been stored.
	ErrDuplicateID = errors.New("entity id already exists")
)
