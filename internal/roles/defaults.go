// Package roles constructs the canonical default role set for new rooms.
package roles

import (
	"github.com/roomwatch/roomwatch/internal/db/models"
)

// Default role names.
const (
	NameOwner         = "Owner"
	NameAdministrator = "Administrator"
	NameStranger      = "Stranger"
	NameAnonymous     = "Anonymous"
	NameEveryone      = "Everyone"
)

// Default role positions. Owner resolves first, Everyone last.
const (
	PositionOwner         = 0
	PositionAdministrator = 1
	PositionStranger      = 1001
	PositionAnonymous     = 1002
	PositionEveryone      = 1003
)

func color(c string) *string {
	return &c
}

// Owner returns the Owner role: every flag allowed, no message delay.
func Owner(roomID string) models.Role {
	return models.Role{
		RoomID:         roomID,
		Name:           NameOwner,
		Color:          color("#ff9200"),
		IsDefault:      true,
		Position:       PositionOwner,
		Permissions:    models.UniformSet(models.PermAllowed),
		MessageTimeout: 0,
	}
}

// Administrator returns the Administrator role.
// Just like Owner but cannot delete the room.
func Administrator(roomID string) models.Role {
	r := Owner(roomID)
	r.Name = NameAdministrator
	r.Color = color("#44bd82")
	r.Position = PositionAdministrator
	r.Permissions.RoomDelete = models.PermUnset

	return r
}

// Stranger returns the role for authenticated non-members.
// Most flags are inherited from Everyone.
func Stranger(roomID string) models.Role {
	r := models.Role{
		RoomID:         roomID,
		Name:           NameStranger,
		Color:          color("#d8d8d8"),
		IsDefault:      true,
		Position:       PositionStranger,
		Permissions:    models.UniformSet(models.PermUnset),
		MessageTimeout: 0,
	}
	r.Permissions.PingEveryone = models.PermAllowed
	r.Permissions.VideoCreate = models.PermAllowed

	return r
}

// Anonymous returns the role for unauthenticated callers.
// All flags and the timeout are inherited.
func Anonymous(roomID string) models.Role {
	return models.Role{
		RoomID:         roomID,
		Name:           NameAnonymous,
		Color:          color("#575757"),
		IsDefault:      true,
		Position:       PositionAnonymous,
		Permissions:    models.UniformSet(models.PermUnset),
		MessageTimeout: models.TimeoutInherit,
	}
}

// Everyone returns the lowest-precedence baseline role. It grants only
// non-destructive read/use flags and explicitly forbids everything else,
// so a role set with nothing but Everyone converges to a definite deny
// rather than an ambiguous unset.
func Everyone(roomID string) models.Role {
	r := models.Role{
		RoomID:         roomID,
		Name:           NameEveryone,
		Color:          color("#8e8e8e"),
		IsDefault:      true,
		Position:       PositionEveryone,
		Permissions:    models.UniformSet(models.PermForbidden),
		MessageTimeout: 1,
	}
	r.Permissions.RoomView = models.PermAllowed
	r.Permissions.EmoteView = models.PermAllowed
	r.Permissions.RoleView = models.PermAllowed
	r.Permissions.VideoWatch = models.PermAllowed
	r.Permissions.MessageCreate = models.PermAllowed
	r.Permissions.MessageRead = models.PermAllowed
	r.Permissions.MessageHistoryRead = models.PermAllowed

	return r
}

// Defaults returns the five default roles for a new room in precedence
// order. The roles are value objects: persistence is the caller's
// responsibility, performed as part of room creation.
func Defaults(roomID string) []models.Role {
	return []models.Role{
		Owner(roomID),
		Administrator(roomID),
		Stranger(roomID),
		Anonymous(roomID),
		Everyone(roomID),
	}
}
