// Package role provides CRUD and assignment operations for room roles.
// Malformed roles are rejected here, at the write boundary, so resolution
// never has to handle them.
package role

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")

	// ErrAssignmentNotFound is returned when a user does not hold the role.
	ErrAssignmentNotFound = errors.New("role assignment not found")

	// ErrAlreadyAssigned is returned when a user already holds the role.
	ErrAlreadyAssigned = errors.New("role already assigned to user")
)

// Create validates and persists a role.
func Create(db *gorm.DB, role *models.Role) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := db.Create(role).Error; err != nil {
		return nil, err
	}

	return role, nil
}

// ByID retrieves a role by its ID.
func ByID(db *gorm.DB, id string) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var role models.Role

	result := db.Where("id = ?", id).First(&role)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}

		return nil, result.Error
	}

	return &role, nil
}

// ListByRoomID returns all roles of a room in resolution order:
// position ascending, ties broken by ID.
func ListByRoomID(db *gorm.DB, roomID string) ([]models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []models.Role

	result := db.
		Where("room_id = ?", roomID).
		Order("position ASC, id ASC").
		Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}

// Update validates and saves a role.
func Update(db *gorm.DB, role *models.Role) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	result := db.Save(role)
	if result.Error != nil {
		return nil, result.Error
	}

	return role, nil
}

// Delete removes a role and its assignments.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Role{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRoleNotFound
		}

		return tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error
	})
}

// Assign links a user to a role.
func Assign(db *gorm.DB, userID, roleID string) (*models.UserRole, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := ByID(db, roleID); err != nil {
		return nil, err
	}

	assignment := models.UserRole{
		RoleID: roleID,
		UserID: userID,
	}

	if err := db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAssigned
		}

		return nil, err
	}

	return &assignment, nil
}

// Unassign removes a user-role link.
func Unassign(db *gorm.DB, userID, roleID string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// ListForUser returns the roles explicitly assigned to a user in a room.
func ListForUser(db *gorm.DB, userID, roomID string) ([]models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []models.Role

	result := db.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ? AND roles.room_id = ?", userID, roomID).
		Order("roles.position ASC, roles.id ASC").
		Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}
