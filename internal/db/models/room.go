package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/uniuri"
)

// Room represents a watch room. Rooms own their roles and resolve to exactly
// one room channel for messaging.
type Room struct {
	// ID is the unique identifier for the room (random string, assigned on create).
	ID string `gorm:"primaryKey;size:16"`
	// Title is the display title of the room.
	Title string `gorm:"size:255;not null"`
	// Path is the unique URL path of the room.
	Path string `gorm:"size:100;not null;uniqueIndex"`
	// IsPublic indicates whether the room is listed publicly.
	IsPublic bool `gorm:"default:false"`
	// Password is the optional argon2id-hashed room password.
	Password *string `gorm:"size:255"`
	// CreatedAt is the timestamp when the room was created (managed by GORM).
	CreatedAt time.Time
	// DeletedAt is the soft delete timestamp (nil if not deleted).
	DeletedAt *time.Time
}

// TableName specifies the database table name for the Room model.
func (Room) TableName() string {
	return "rooms"
}

// BeforeCreate assigns a random ID when none was set.
func (r *Room) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uniuri.New()
	}

	return nil
}
