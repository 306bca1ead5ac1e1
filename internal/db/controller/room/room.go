// Package room manages room lifecycle. Creating a room persists the room
// row, its five bootstrapped default roles and its room channel as one
// atomic unit, so a room can never exist half-initialized.
package room

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/roles"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists is returned when a room path is already taken.
	ErrRoomExists = errors.New("room already exists")

	// ErrTitleEmpty is returned when a room is created without a title.
	ErrTitleEmpty = errors.New("room title cannot be empty")

	// ErrPathEmpty is returned when a room is created without a path.
	ErrPathEmpty = errors.New("room path cannot be empty")
)

// Create persists a new room together with its default roles and its
// room channel, all inside one transaction.
func Create(db *gorm.DB, title, path string, isPublic bool) (*models.Room, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if title == "" {
		return nil, ErrTitleEmpty
	}
	if path == "" {
		return nil, ErrPathEmpty
	}

	room := models.Room{
		Title:    title,
		Path:     path,
		IsPublic: isPublic,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		for _, r := range roles.Defaults(room.ID) {
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
		}

		ch := models.Channel{}
		if err := tx.Create(&ch).Error; err != nil {
			return err
		}

		rc := models.RoomChannel{
			ChannelID: ch.ID,
			RoomID:    room.ID,
		}

		return tx.Create(&rc).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomExists
		}

		return nil, err
	}

	return &room, nil
}

// ByID retrieves a room by its ID.
func ByID(db *gorm.DB, id string) (*models.Room, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var room models.Room

	result := db.Where("id = ?", id).First(&room)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}

		return nil, result.Error
	}

	return &room, nil
}

// ByPath retrieves a room by its unique URL path.
func ByPath(db *gorm.DB, path string) (*models.Room, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var room models.Room

	result := db.Where("path = ?", path).First(&room)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}

		return nil, result.Error
	}

	return &room, nil
}

// Delete removes a room and its roles and assignments.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Room{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRoomNotFound
		}

		var roleIDs []string
		if err := tx.Model(&models.Role{}).
			Where("room_id = ?", id).
			Pluck("id", &roleIDs).Error; err != nil {
			return err
		}

		if len(roleIDs) > 0 {
			if err := tx.Where("role_id IN ?", roleIDs).
				Delete(&models.UserRole{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("room_id = ?", id).Delete(&models.Role{}).Error
	})
}
