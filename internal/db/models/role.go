package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/uniuri"
)

// Role is an ordered, named bundle of permission values belonging to a room.
// A user holds zero or more roles per room; the effective permission for an
// action is resolved by scanning the user's roles in precedence order.
type Role struct {
	// ID is the unique identifier for the role (random string, assigned on create).
	ID string `gorm:"primaryKey;size:16"`
	// RoomID is the room this role belongs to.
	RoomID string `gorm:"size:16;not null;index"`
	// Name is the display name of the role (e.g. "Owner", "Moderator").
	Name string `gorm:"size:100;not null"`
	// Color is an optional display color in #rrggbb form.
	Color *string `gorm:"size:7"`
	// IsDefault marks a bootstrapped role that applies by membership status
	// rather than explicit assignment.
	IsDefault bool `gorm:"default:false"`
	// Position is the precedence ordering key. Lower value resolves first.
	// Positions need not be unique; ties are broken by ID at resolution time.
	Position int `gorm:"not null"`
	// Permissions is the full tri-state flag vector, one column per flag.
	Permissions PermissionSet `gorm:"embedded"`
	// MessageTimeout is the delay in seconds between messages.
	// TimeoutInherit (-1) falls through to lower-precedence roles.
	MessageTimeout Timeout `gorm:"not null;default:-1"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// BeforeCreate assigns a random ID when none was set.
func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uniuri.New()
	}

	return nil
}

// Validate rejects malformed roles before they reach storage or resolution:
// an unknown tri-state value, a timeout below the inherit sentinel, or
// missing identity fields.
func (r *Role) Validate() error {
	if r.RoomID == "" {
		return ErrRoomIDEmpty
	}
	if r.Name == "" {
		return ErrRoleNameEmpty
	}
	if !r.MessageTimeout.Valid() {
		return ErrInvalidTimeout
	}

	return r.Permissions.Validate()
}

// UserRole links a user to an explicitly assigned role.
// The room scope is implicit through the role.
type UserRole struct {
	// ID is the unique identifier for the assignment.
	ID string `gorm:"primaryKey;size:16"`
	// RoleID is the assigned role.
	RoleID string `gorm:"size:16;not null;uniqueIndex:idx_user_role"`
	// UserID is the user holding the role.
	UserID string `gorm:"size:16;not null;uniqueIndex:idx_user_role"`
	// CreatedAt is the timestamp when the assignment was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}

// BeforeCreate assigns a random ID when none was set.
func (ur *UserRole) BeforeCreate(_ *gorm.DB) error {
	if ur.ID == "" {
		ur.ID = uniuri.New()
	}

	return nil
}
