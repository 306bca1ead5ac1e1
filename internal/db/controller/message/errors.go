package message

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")

	// ErrEmptyBatch is returned when a batch creation is called with no messages.
	ErrEmptyBatch = errors.New("message batch cannot be empty")

	// ErrCreationConflict is returned when an insert anywhere in the batch
	// hits a uniqueness constraint. The whole batch has been rolled back.
	ErrCreationConflict = errors.New("message creation conflict")
)
