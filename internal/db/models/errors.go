package models

import "errors"

var (
	// ErrInvalidPermissionState is returned when a role carries a permission
	// value outside the unset/forbidden/allowed tri-state.
	ErrInvalidPermissionState = errors.New("permission state must be unset, forbidden or allowed")

	// ErrInvalidTimeout is returned when a role carries a message timeout
	// below the inherit sentinel.
	ErrInvalidTimeout = errors.New("message timeout must be -1 (inherit) or a non-negative delay")

	// ErrRoomIDEmpty is returned when a room-scoped row is built without a room reference.
	ErrRoomIDEmpty = errors.New("room id cannot be empty")

	// ErrRoleNameEmpty is returned when a role is built without a name.
	ErrRoleNameEmpty = errors.New("role name cannot be empty")
)
