// Package permission exposes the effective permission vector of a caller
// in a room, mainly for client bootstrapping and debugging.
package permission

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/perm"
	"github.com/roomwatch/roomwatch/internal/web/handler"
	"github.com/roomwatch/roomwatch/internal/web/middleware/permit"
)

// Path is the base path of the permission API, scoped by room.
const Path = handler.APIPath + "/rooms/:room/permissions"

// Caller classes accepted by the class query parameter.
const (
	ClassMember    = "member"
	ClassStranger  = "stranger"
	ClassAnonymous = "anonymous"
)

// Vector is the response body: the resolved state of every flag plus the
// effective message timeout.
type Vector struct {
	Allowed        map[models.PermissionFlag]bool `json:"allowed"`
	MessageTimeout int                            `json:"messageTimeout"`
}

// Service is the permission handler service.
type Service struct {
	handler.Service

	cfg  *config.Config
	perm *perm.Service
}

// Handler is the permission handler.
var Handler = Service{}

// Init initializes the permission handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, permService *perm.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.perm = permService

	app.Get(Path, s.Effective)
}

// Effective resolves and returns the caller's permission vector. The
// caller class defaults to member when the identity header is present and
// to anonymous when it is not; ?class= overrides for inspection.
func (s *Service) Effective(c *fiber.Ctx) error {
	roomID := c.Params("room")
	userID := c.Get(permit.CallerHeader)

	class := c.Query("class")
	if class == "" {
		if userID == "" {
			class = ClassAnonymous
		} else {
			class = ClassMember
		}
	}

	var (
		eff *perm.Effective
		err error
	)

	switch class {
	case ClassMember:
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).SendString("member class requires the " + permit.CallerHeader + " header")
		}

		eff, err = s.perm.EffectiveForMember(userID, roomID)
	case ClassStranger:
		eff, err = s.perm.EffectiveForStranger(roomID)
	case ClassAnonymous:
		eff, err = s.perm.EffectiveForAnonymous(roomID)
	default:
		return c.Status(fiber.StatusBadRequest).SendString("unknown caller class " + class)
	}

	if err != nil {
		if errors.Is(err, perm.ErrDefaultRoleMissing) {
			return c.Status(fiber.StatusNotFound).SendString("room not found")
		}

		log.Error().Err(err).Str("room_id", roomID).Str("class", class).Msg("failed to resolve permissions")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(Vector{
		Allowed:        eff.Vector(),
		MessageTimeout: eff.MessageTimeout(),
	})
}
