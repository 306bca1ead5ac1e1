package channel

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrChannelNotFound is returned when a channel is not found.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrChannelExists is returned when subtype creation hits a uniqueness
	// constraint, e.g. a second room channel for the same room. The whole
	// creation, including the primary channel row, has been rolled back.
	ErrChannelExists = errors.New("channel already exists")

	// ErrNoParticipants is returned when a DM channel is created without
	// participants.
	ErrNoParticipants = errors.New("dm channel needs at least one participant")

	// ErrRoomIDEmpty is returned when a room channel is created without a room.
	ErrRoomIDEmpty = errors.New("room id cannot be empty")
)
