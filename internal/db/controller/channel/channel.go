// Package channel creates and looks up channels. A channel is a composite
// entity: one row in the primary channels table plus exactly one
// specialization row (DM or room). The pair is created atomically; a primary
// row without its specialization never persists.
package channel

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
)

// Spec selects the channel specialization to create. It is a closed set:
// exactly DMSpec and RoomSpec implement it, so "no subtype" and "two
// subtypes" are not representable at the API boundary.
type Spec interface {
	validate() error
}

// DMSpec creates a direct-message channel with the given participants.
type DMSpec struct {
	ParticipantIDs []string
}

func (s DMSpec) validate() error {
	if len(s.ParticipantIDs) == 0 {
		return ErrNoParticipants
	}

	return nil
}

// RoomSpec creates the messaging channel of a room.
type RoomSpec struct {
	RoomID string
}

func (s RoomSpec) validate() error {
	if s.RoomID == "" {
		return ErrRoomIDEmpty
	}

	return nil
}

// Created is the result of a composite channel creation: the primary row
// and the one specialization that was created with it.
type Created struct {
	Channel models.Channel
	DM      *models.DMChannel
	Room    *models.RoomChannel
}

// Create creates a channel with the specialization selected by spec.
// The primary row is inserted first, then the specialization row pointing
// at it, all inside one transaction. Any failure, including a uniqueness
// conflict on the specialization, rolls back the primary row as well.
func Create(db *gorm.DB, spec Spec) (*Created, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	var created Created

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&created.Channel).Error; err != nil {
			return err
		}

		switch s := spec.(type) {
		case DMSpec:
			return createDM(tx, &created, s)
		case RoomSpec:
			return createRoom(tx, &created, s)
		default:
			// Spec is sealed; a third implementation cannot exist.
			panic("channel: unknown spec type")
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChannelExists
		}

		return nil, err
	}

	return &created, nil
}

func createDM(tx *gorm.DB, created *Created, spec DMSpec) error {
	dm := models.DMChannel{ChannelID: created.Channel.ID}
	if err := tx.Create(&dm).Error; err != nil {
		return err
	}

	for _, userID := range spec.ParticipantIDs {
		participant := models.DMChannelUser{
			UserID:      userID,
			DMChannelID: dm.ID,
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
	}

	created.DM = &dm

	return nil
}

func createRoom(tx *gorm.DB, created *Created, spec RoomSpec) error {
	rc := models.RoomChannel{
		ChannelID: created.Channel.ID,
		RoomID:    spec.RoomID,
	}
	if err := tx.Create(&rc).Error; err != nil {
		return err
	}

	created.Room = &rc

	return nil
}

// ByID retrieves a primary channel by its ID.
func ByID(db *gorm.DB, id string) (*models.Channel, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var ch models.Channel

	result := db.Where("id = ?", id).First(&ch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}

		return nil, result.Error
	}

	return &ch, nil
}

// RoomChannelByRoomID retrieves the room channel of a room.
// A room resolves to exactly one room channel.
func RoomChannelByRoomID(db *gorm.DB, roomID string) (*models.RoomChannel, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rc models.RoomChannel

	result := db.Where("room_id = ?", roomID).First(&rc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}

		return nil, result.Error
	}

	return &rc, nil
}

// Participants lists the users of a DM channel.
func Participants(db *gorm.DB, dmChannelID string) ([]models.DMChannelUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var participants []models.DMChannelUser

	result := db.Where("dm_channel_id = ?", dmChannelID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// SoftDelete marks the primary channel deleted. The specialization row and
// the channel's messages stay in place.
func SoftDelete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Channel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChannelNotFound
	}

	return nil
}
