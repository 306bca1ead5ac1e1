package perm

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrDefaultRoleMissing is returned when a room lacks one of its
	// bootstrapped default roles. This means the room was never
	// bootstrapped; resolution would be meaningless without its deny floor.
	ErrDefaultRoleMissing = errors.New("default role missing for room")
)
