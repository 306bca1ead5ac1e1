// Package permit provides Fiber middleware gating routes on resolved
// room permissions.
package permit

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/perm"
)

// CallerHeader names the header carrying the authenticated user ID.
// Authentication itself happens upstream of this service; an absent header
// resolves the caller as anonymous.
const CallerHeader = "X-User-ID"

// RequireFlag creates Fiber middleware that resolves the caller's effective
// permissions in the room named by the route parameter and rejects the
// request unless the given flag resolves to allowed.
func RequireFlag(svc *perm.Service, flag models.PermissionFlag, roomParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID := c.Params(roomParam)
		if roomID == "" {
			return c.Status(fiber.StatusBadRequest).SendString("missing room id")
		}

		var (
			eff    *perm.Effective
			err    error
			userID = c.Get(CallerHeader)
		)

		if userID == "" {
			eff, err = svc.EffectiveForAnonymous(roomID)
		} else {
			eff, err = svc.EffectiveForMember(userID, roomID)
		}

		if err != nil {
			if errors.Is(err, perm.ErrDefaultRoleMissing) {
				return c.Status(fiber.StatusNotFound).SendString("room not found")
			}

			log.Error().Err(err).Str("room_id", roomID).Str("flag", string(flag)).
				Msg("failed to resolve permissions")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		if !eff.Allows(flag) {
			log.Warn().Str("user_id", userID).Str("room_id", roomID).Str("flag", string(flag)).
				Msg("caller lacks required permission")

			return c.Status(fiber.StatusForbidden).SendString("Forbidden")
		}

		c.Locals("effective", eff)

		return c.Next()
	}
}
