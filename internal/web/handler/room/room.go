// Package room provides the room management API handlers.
package room

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	roomctl "github.com/roomwatch/roomwatch/internal/db/controller/room"
	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/perm"
	"github.com/roomwatch/roomwatch/internal/web/handler"
	"github.com/roomwatch/roomwatch/internal/web/middleware/permit"
)

// Path is the base path of the room API.
const Path = handler.APIPath + "/rooms"

// CreatePayload is the request body for room creation.
type CreatePayload struct {
	Title    string `json:"title" validate:"required,max=255"`
	Path     string `json:"path" validate:"required,max=100"`
	IsPublic bool   `json:"isPublic"`
}

// Service is the room handler service.
type Service struct {
	handler.Service

	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the room handler.
var Handler = Service{}

// Init initializes the room handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, permService *perm.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Post(Path, s.Create)
	app.Get(Path+"/:room",
		permit.RequireFlag(permService, models.FlagRoomView, "room"),
		s.Get,
	)
	app.Delete(Path+"/:room",
		permit.RequireFlag(permService, models.FlagRoomDelete, "room"),
		s.Delete,
	)
}

// Create handles room creation. The room, its default roles and its room
// channel are persisted as one unit.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload CreatePayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	created, err := roomctl.Create(s.db, payload.Title, payload.Path, payload.IsPublic)
	if err != nil {
		if errors.Is(err, roomctl.ErrRoomExists) {
			return c.Status(fiber.StatusConflict).SendString("room path already taken")
		}

		log.Error().Err(err).Str("path", payload.Path).Msg("failed to create room")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Get handles room lookup by ID.
func (s *Service) Get(c *fiber.Ctx) error {
	found, err := roomctl.ByID(s.db, c.Params("room"))
	if err != nil {
		if errors.Is(err, roomctl.ErrRoomNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("room not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(found)
}

// Delete handles room deletion.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := roomctl.Delete(s.db, c.Params("room")); err != nil {
		if errors.Is(err, roomctl.ErrRoomNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("room not found")
		}

		log.Error().Err(err).Str("room_id", c.Params("room")).Msg("failed to delete room")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
