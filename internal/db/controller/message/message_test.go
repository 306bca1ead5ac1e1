package message

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.Message{},
		&models.MessageMention{},
		&models.RoomChannel{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func messageCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)

	return count
}

func mentionCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.MessageMention{}).Count(&count).Error)

	return count
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, NewMessage{
		ChannelID:        "chan-1",
		UserID:           "user-1",
		Content:          "hello @a @b",
		MentionedUserIDs: []string{"user-a", "user-b"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.Message.ID)
	assert.Equal(t, "chan-1", created.Message.ChannelID)
	require.Len(t, created.Mentions, 2)

	for _, mention := range created.Mentions {
		assert.Equal(t, created.Message.ID, mention.MessageID)
	}

	mentions, err := MentionsByMessageID(db, created.Message.ID)
	require.NoError(t, err)
	assert.Len(t, mentions, 2)
}

func TestCreateBatch(t *testing.T) {
	db := setupTestDB(t)

	t.Run("nil database", func(t *testing.T) {
		_, err := CreateBatch(nil, []NewMessage{{ChannelID: "chan-1"}})
		require.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := CreateBatch(db, nil)
		require.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("preserves input order", func(t *testing.T) {
		batch := make([]NewMessage, 5)
		for i := range batch {
			batch[i] = NewMessage{
				ChannelID: "chan-1",
				UserID:    "user-1",
				Content:   fmt.Sprintf("message %d", i),
			}
		}

		results, err := CreateBatch(db, batch)
		require.NoError(t, err)
		require.Len(t, results, 5)

		for i, res := range results {
			assert.Equal(t, fmt.Sprintf("message %d", i), res.Message.Content)
			assert.NotEmpty(t, res.Message.ID)
		}
	})
}

// A failing insert anywhere in the batch rolls back every message and
// mention of the batch, including the ones already inserted.
func TestCreateBatchRollsBackWholeBatch(t *testing.T) {
	db := setupTestDB(t)

	before := messageCount(t, db)

	batch := []NewMessage{
		{ChannelID: "chan-1", UserID: "user-1", Content: "first"},
		{ChannelID: "chan-1", UserID: "user-1", Content: "second", MentionedUserIDs: []string{"user-a"}},
		// duplicate mention of the same user violates the unique
		// (user_id, message_id) index and aborts the batch
		{ChannelID: "chan-1", UserID: "user-1", Content: "third", MentionedUserIDs: []string{"user-b", "user-b"}},
	}

	results, err := CreateBatch(db, batch)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCreationConflict)
	assert.Nil(t, results)

	assert.Equal(t, before, messageCount(t, db))
	assert.Zero(t, mentionCount(t, db))
}

func TestListByChannelID(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := Create(db, NewMessage{ChannelID: "chan-1", UserID: "user-1", Content: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
	}

	_, err := Create(db, NewMessage{ChannelID: "chan-2", UserID: "user-1", Content: "other"})
	require.NoError(t, err)

	messages, err := ListByChannelID(db, "chan-1")
	require.NoError(t, err)
	assert.Len(t, messages, 3)

	messages, err = ListByChannelID(db, "empty")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestListByRoomID(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.RoomChannel{ChannelID: "chan-1", RoomID: "room-1"}).Error)

	_, err := Create(db, NewMessage{ChannelID: "chan-1", UserID: "user-1", Content: "in the room"})
	require.NoError(t, err)

	messages, err := ListByRoomID(db, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "in the room", messages[0].Content)

	_, err = ListByRoomID(db, "missing")
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, NewMessage{
		ChannelID:        "chan-1",
		UserID:           "user-1",
		Content:          "doomed",
		MentionedUserIDs: []string{"user-a"},
	})
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.Message.ID))

	assert.Zero(t, messageCount(t, db))
	assert.Zero(t, mentionCount(t, db))

	require.ErrorIs(t, Delete(db, created.Message.ID), ErrMessageNotFound)
	require.ErrorIs(t, Delete(nil, created.Message.ID), ErrDBNil)
}
