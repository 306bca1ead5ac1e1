package perm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/roles"
)

// Service assembles the applicable role set for a caller and resolves it.
//
// Three caller classes exist and they are mutually exclusive:
// a member resolves with their explicitly assigned roles plus Everyone,
// an authenticated non-member resolves with Stranger plus Everyone, and an
// unauthenticated caller resolves with Anonymous plus Everyone. Default
// roles are never explicitly assigned; they apply by membership status.
//
// Role reads are snapshot reads. A role changed moments after resolution is
// an accepted race; permission changes are not instantaneously consistent
// across in-flight actions.
type Service struct {
	db *gorm.DB
}

// NewService creates a new permission service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// defaultRole loads one bootstrapped default role of a room by name.
func (s *Service) defaultRole(roomID, name string) (models.Role, error) {
	var role models.Role

	err := s.db.
		Where("room_id = ? AND is_default = ? AND name = ?", roomID, true, name).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Role{}, ErrDefaultRoleMissing
		}

		return models.Role{}, err
	}

	return role, nil
}

// assignedRoles loads the roles explicitly assigned to a user in a room.
func (s *Service) assignedRoles(userID, roomID string) ([]models.Role, error) {
	var assigned []models.Role

	err := s.db.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ? AND roles.room_id = ?", userID, roomID).
		Find(&assigned).Error
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// ApplicableForMember returns the applicable role set of an authenticated
// room member: all explicitly assigned roles plus the implicit Everyone.
func (s *Service) ApplicableForMember(userID, roomID string) ([]models.Role, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	assigned, err := s.assignedRoles(userID, roomID)
	if err != nil {
		return nil, err
	}

	everyone, err := s.defaultRole(roomID, roles.NameEveryone)
	if err != nil {
		return nil, err
	}

	return append(assigned, everyone), nil
}

// ApplicableForStranger returns the applicable role set of an authenticated
// user who is not a member of the room: Stranger plus Everyone.
func (s *Service) ApplicableForStranger(roomID string) ([]models.Role, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	stranger, err := s.defaultRole(roomID, roles.NameStranger)
	if err != nil {
		return nil, err
	}

	everyone, err := s.defaultRole(roomID, roles.NameEveryone)
	if err != nil {
		return nil, err
	}

	return []models.Role{stranger, everyone}, nil
}

// ApplicableForAnonymous returns the applicable role set of an
// unauthenticated caller: Anonymous plus Everyone. Anonymous substitutes
// for every member-only role, never stacks with Stranger.
func (s *Service) ApplicableForAnonymous(roomID string) ([]models.Role, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	anonymous, err := s.defaultRole(roomID, roles.NameAnonymous)
	if err != nil {
		return nil, err
	}

	everyone, err := s.defaultRole(roomID, roles.NameEveryone)
	if err != nil {
		return nil, err
	}

	return []models.Role{anonymous, everyone}, nil
}

// EffectiveForMember resolves the full permission vector for a room member.
func (s *Service) EffectiveForMember(userID, roomID string) (*Effective, error) {
	applicable, err := s.ApplicableForMember(userID, roomID)
	if err != nil {
		return nil, err
	}

	return ResolveAll(applicable), nil
}

// EffectiveForStranger resolves the full permission vector for an
// authenticated non-member.
func (s *Service) EffectiveForStranger(roomID string) (*Effective, error) {
	applicable, err := s.ApplicableForStranger(roomID)
	if err != nil {
		return nil, err
	}

	return ResolveAll(applicable), nil
}

// EffectiveForAnonymous resolves the full permission vector for an
// unauthenticated caller.
func (s *Service) EffectiveForAnonymous(roomID string) (*Effective, error) {
	applicable, err := s.ApplicableForAnonymous(roomID)
	if err != nil {
		return nil, err
	}

	return ResolveAll(applicable), nil
}

// Allows resolves a single flag for a room member.
func (s *Service) Allows(userID, roomID string, flag models.PermissionFlag) (bool, error) {
	applicable, err := s.ApplicableForMember(userID, roomID)
	if err != nil {
		return false, err
	}

	return Resolve(applicable, flag), nil
}
