// Package channel provides the direct-message channel API handlers.
package channel

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	channelctl "github.com/roomwatch/roomwatch/internal/db/controller/channel"
	"github.com/roomwatch/roomwatch/internal/perm"
	"github.com/roomwatch/roomwatch/internal/web/handler"
)

// Path is the base path of the channel API.
const Path = handler.APIPath + "/channels"

// CreateDMPayload is the request body for direct-message channel creation.
type CreateDMPayload struct {
	ParticipantIDs []string `json:"participantIds" validate:"required,min=1,dive,required"`
}

// Service is the channel handler service.
type Service struct {
	handler.Service

	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the channel handler.
var Handler = Service{}

// Init initializes the channel handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ *perm.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Post(Path+"/dm", s.CreateDM)
	app.Get(Path+"/:channel/participants", s.Participants)
	app.Delete(Path+"/:channel", s.Delete)
}

// CreateDM creates a direct-message channel with its participants.
func (s *Service) CreateDM(c *fiber.Ctx) error {
	var payload CreateDMPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	created, err := channelctl.Create(s.db, channelctl.DMSpec{ParticipantIDs: payload.ParticipantIDs})
	if err != nil {
		switch {
		case errors.Is(err, channelctl.ErrNoParticipants):
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		case errors.Is(err, channelctl.ErrChannelExists):
			return c.Status(fiber.StatusConflict).SendString("channel already exists")
		default:
			log.Error().Err(err).Msg("failed to create dm channel")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Participants lists the users of a direct-message channel.
func (s *Service) Participants(c *fiber.Ctx) error {
	participants, err := channelctl.Participants(s.db, c.Params("channel"))
	if err != nil {
		log.Error().Err(err).Str("channel_id", c.Params("channel")).Msg("failed to list participants")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(participants)
}

// Delete soft-deletes a channel.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := channelctl.SoftDelete(s.db, c.Params("channel")); err != nil {
		if errors.Is(err, channelctl.ErrChannelNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("channel not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
