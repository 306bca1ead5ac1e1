package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/uniuri"
)

// User represents a user account. Accounts may carry a local password or be
// linked to an external Discord identity; per-room permissions come from the
// roles assigned to the user in each room.
type User struct {
	// ID is the unique identifier for the user (random string, assigned on create).
	ID string `gorm:"primaryKey;size:16"`
	// DiscordID is the optional external Discord identity.
	DiscordID *string `gorm:"size:32;uniqueIndex"`
	// Username is the unique login name.
	Username string `gorm:"unique;size:100;not null"`
	// Nickname is the optional display name shown instead of the username.
	Nickname *string `gorm:"size:100"`
	// Email is the optional email address.
	Email *string `gorm:"size:255"`
	// Password is the optional argon2id-hashed password.
	Password *string `gorm:"size:255"`
	// Color is an optional display color in #rrggbb form.
	Color *string `gorm:"size:7"`
	// FileID references the optional avatar file.
	FileID *string `gorm:"size:16"`
	// IsAdmin marks a platform administrator.
	IsAdmin bool `gorm:"default:false"`
	// LastLogin is the timestamp of the most recent login.
	LastLogin *time.Time
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a random ID when none was set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uniuri.New()
	}

	return nil
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored
// hashed password. Returns false for accounts without a local password.
func (u *User) VerifyPassword(password string) bool {
	if u.Password == nil {
		return false
	}

	match, err := argon2id.ComparePasswordAndHash(password, *u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
