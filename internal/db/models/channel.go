package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/uniuri"
)

// There are two kinds of channels: DM and room. DM channels have a set of
// participant users, usually two. Room channels have no participants of
// their own but reference exactly one room. Both wrap a row in the primary
// channels table, because that is where messages point to. A primary channel
// row must never exist without exactly one specialization row.

// Channel is the primary channel entity every message references.
type Channel struct {
	// ID is the unique identifier for the channel (random string, assigned on create).
	ID string `gorm:"primaryKey;size:16"`
	// DeletedAt is the soft delete timestamp (nil if not deleted).
	// Deleting a channel never cascades to its messages.
	DeletedAt *time.Time
	// CreatedAt is the timestamp when the channel was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the Channel model.
func (Channel) TableName() string {
	return "channels"
}

// BeforeCreate assigns a random ID when none was set.
func (c *Channel) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uniuri.New()
	}

	return nil
}

// DMChannel specializes a primary channel for direct messages.
type DMChannel struct {
	// ID is the unique identifier for the DM channel.
	ID string `gorm:"primaryKey;size:16"`
	// ChannelID references the primary channel row.
	ChannelID string `gorm:"size:16;not null;uniqueIndex"`
}

// TableName specifies the database table name for the DMChannel model.
func (DMChannel) TableName() string {
	return "dm_channels"
}

// BeforeCreate assigns a random ID when none was set.
func (c *DMChannel) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uniuri.New()
	}

	return nil
}

// DMChannelUser is a participant of a DM channel.
type DMChannelUser struct {
	// ID is the unique identifier for the participant row.
	ID string `gorm:"primaryKey;size:16"`
	// UserID is the participating user.
	UserID string `gorm:"size:16;not null;uniqueIndex:idx_dm_participant"`
	// DMChannelID is the DM channel the user participates in.
	DMChannelID string `gorm:"column:dm_channel_id;size:16;not null;uniqueIndex:idx_dm_participant"`
}

// TableName specifies the database table name for the DMChannelUser model.
func (DMChannelUser) TableName() string {
	return "dm_channel_users"
}

// BeforeCreate assigns a random ID when none was set.
func (c *DMChannelUser) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uniuri.New()
	}

	return nil
}

// RoomChannel specializes a primary channel for room messaging.
// A room resolves to exactly one room channel; the unique index on RoomID
// is what enforces that under concurrent creation.
type RoomChannel struct {
	// ID is the unique identifier for the room channel.
	ID string `gorm:"primaryKey;size:16"`
	// ChannelID references the primary channel row.
	ChannelID string `gorm:"size:16;not null;uniqueIndex"`
	// RoomID is the room this channel belongs to.
	RoomID string `gorm:"size:16;not null;uniqueIndex"`
}

// TableName specifies the database table name for the RoomChannel model.
func (RoomChannel) TableName() string {
	return "room_channels"
}

// BeforeCreate assigns a random ID when none was set.
func (c *RoomChannel) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uniuri.New()
	}

	return nil
}
