package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/uniuri"
)

// Message belongs to exactly one channel and one authoring user.
// Messages are owned by the channel but survive its soft delete.
type Message struct {
	// ID is the unique identifier for the message (random string, assigned on create).
	ID string `gorm:"primaryKey;size:16"`
	// ChannelID is the primary channel the message was posted to.
	ChannelID string `gorm:"size:16;not null;index"`
	// UserID is the authoring user.
	UserID string `gorm:"size:16;not null"`
	// Content is the message text.
	Content string `gorm:"type:text;not null"`
	// CreatedAt is the timestamp when the message was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the Message model.
func (Message) TableName() string {
	return "messages"
}

// BeforeCreate assigns a random ID when none was set.
func (m *Message) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uniuri.New()
	}

	return nil
}

// MessageMention records one mentioned user of a message. Mentions are
// created together with their message and have no independent lifecycle;
// a user can be mentioned at most once per message.
type MessageMention struct {
	// ID is the unique identifier for the mention row.
	ID string `gorm:"primaryKey;size:16"`
	// UserID is the mentioned user.
	UserID string `gorm:"size:16;not null;uniqueIndex:idx_message_mention"`
	// MessageID is the message carrying the mention.
	MessageID string `gorm:"size:16;not null;uniqueIndex:idx_message_mention"`
}

// TableName specifies the database table name for the MessageMention model.
func (MessageMention) TableName() string {
	return "message_mentions"
}

// BeforeCreate assigns a random ID when none was set.
func (m *MessageMention) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uniuri.New()
	}

	return nil
}
