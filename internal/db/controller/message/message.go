// Package message creates and lists messages. A message and its mention
// records form one unit: they are inserted together and rolled back
// together, so a partial message-with-mentions is never visible.
package message

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
)

// listLimit caps channel history reads.
const listLimit = 20

// NewMessage is one message to create together with its mentions.
type NewMessage struct {
	ChannelID        string
	UserID           string
	Content          string
	MentionedUserIDs []string
}

// WithMentions pairs a created message with its created mention rows.
type WithMentions struct {
	Message  models.Message
	Mentions []models.MessageMention
}

// createOne inserts one message and its mentions using the given
// transaction handle.
func createOne(tx *gorm.DB, in NewMessage) (WithMentions, error) {
	out := WithMentions{
		Message: models.Message{
			ChannelID: in.ChannelID,
			UserID:    in.UserID,
			Content:   in.Content,
		},
		Mentions: make([]models.MessageMention, 0, len(in.MentionedUserIDs)),
	}

	if err := tx.Create(&out.Message).Error; err != nil {
		return WithMentions{}, err
	}

	for _, userID := range in.MentionedUserIDs {
		mention := models.MessageMention{
			UserID:    userID,
			MessageID: out.Message.ID,
		}
		if err := tx.Create(&mention).Error; err != nil {
			return WithMentions{}, err
		}

		out.Mentions = append(out.Mentions, mention)
	}

	return out, nil
}

// CreateBatch creates all messages and all mentions of the batch inside one
// transaction, preserving input order in the output. Batching amortizes
// transaction overhead on bulk ingestion paths; a single failed insert
// anywhere aborts and rolls back the entire batch.
func CreateBatch(db *gorm.DB, batch []NewMessage) ([]WithMentions, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]WithMentions, 0, len(batch))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, in := range batch {
			created, err := createOne(tx, in)
			if err != nil {
				return err
			}

			results = append(results, created)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCreationConflict
		}

		return nil, err
	}

	return results, nil
}

// Create creates a single message with its mentions. Same all-or-nothing
// guarantee as a one-element batch.
func Create(db *gorm.DB, in NewMessage) (*WithMentions, error) {
	results, err := CreateBatch(db, []NewMessage{in})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}

// ListByChannelID returns the most recent messages of a channel.
func ListByChannelID(db *gorm.DB, channelID string) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message

	result := db.
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// ListByRoomID returns the most recent messages of a room by hopping
// room -> room channel -> primary channel. The hop and the read run in one
// transaction so the channel reference cannot change mid-lookup.
func ListByRoomID(db *gorm.DB, roomID string) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message

	err := db.Transaction(func(tx *gorm.DB) error {
		var rc models.RoomChannel

		if err := tx.Where("room_id = ?", roomID).First(&rc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMessageNotFound
			}

			return err
		}

		return tx.
			Where("channel_id = ?", rc.ChannelID).
			Order("created_at DESC").
			Limit(listLimit).
			Find(&messages).Error
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// MentionsByMessageID lists the mention rows of a message.
func MentionsByMessageID(db *gorm.DB, messageID string) ([]models.MessageMention, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var mentions []models.MessageMention

	result := db.Where("message_id = ?", messageID).Find(&mentions)
	if result.Error != nil {
		return nil, result.Error
	}

	return mentions, nil
}

// Delete removes a message row. Its mentions are pruned with it.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Message{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMessageNotFound
		}

		return tx.Where("message_id = ?", id).Delete(&models.MessageMention{}).Error
	})
}
