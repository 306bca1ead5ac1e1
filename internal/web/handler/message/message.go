// Package message provides the message API handlers.
package message

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	channelctl "github.com/roomwatch/roomwatch/internal/db/controller/channel"
	messagectl "github.com/roomwatch/roomwatch/internal/db/controller/message"
	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/perm"
	"github.com/roomwatch/roomwatch/internal/web/handler"
	"github.com/roomwatch/roomwatch/internal/web/middleware/permit"
)

// Path is the base path of the message API, scoped by room.
const Path = handler.APIPath + "/rooms/:room/messages"

// CreatePayload is the request body for message creation. Several
// messages may be submitted at once; the batch is persisted atomically.
type CreatePayload struct {
	Messages []MessageEntry `json:"messages" validate:"required,min=1,dive"`
}

// MessageEntry is a single message inside a creation batch.
type MessageEntry struct {
	Content          string   `json:"content" validate:"required,max=2000"`
	MentionedUserIDs []string `json:"mentionedUserIds" validate:"omitempty,dive,required"`
}

// Service is the message handler service.
type Service struct {
	handler.Service

	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the message handler.
var Handler = Service{}

// Init initializes the message handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, permService *perm.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Post(Path,
		permit.RequireFlag(permService, models.FlagMessageCreate, "room"),
		s.Create,
	)
	app.Get(Path,
		permit.RequireFlag(permService, models.FlagMessageHistoryRead, "room"),
		s.List,
	)
	app.Delete(Path+"/:message",
		permit.RequireFlag(permService, models.FlagMessageDelete, "room"),
		s.Delete,
	)
}

// Create persists a batch of messages for the room's channel. The whole
// batch either lands or rolls back.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload CreatePayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	roomChannel, err := channelctl.RoomChannelByRoomID(s.db, c.Params("room"))
	if err != nil {
		if errors.Is(err, channelctl.ErrChannelNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("room channel not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	userID := c.Get(permit.CallerHeader)

	batch := make([]messagectl.NewMessage, 0, len(payload.Messages))
	for _, entry := range payload.Messages {
		batch = append(batch, messagectl.NewMessage{
			ChannelID:        roomChannel.ChannelID,
			UserID:           userID,
			Content:          entry.Content,
			MentionedUserIDs: entry.MentionedUserIDs,
		})
	}

	created, err := messagectl.CreateBatch(s.db, batch)
	if err != nil {
		switch {
		case errors.Is(err, messagectl.ErrEmptyBatch):
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		case errors.Is(err, messagectl.ErrCreationConflict):
			return c.Status(fiber.StatusConflict).SendString(err.Error())
		default:
			log.Error().Err(err).Str("room_id", c.Params("room")).Msg("failed to create messages")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns the most recent messages of the room's channel.
func (s *Service) List(c *fiber.Ctx) error {
	list, err := messagectl.ListByRoomID(s.db, c.Params("room"))
	if err != nil {
		if errors.Is(err, messagectl.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("room channel not found")
		}

		log.Error().Err(err).Str("room_id", c.Params("room")).Msg("failed to list messages")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(list)
}

// Delete removes a message and its mentions.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := messagectl.Delete(s.db, c.Params("message")); err != nil {
		if errors.Is(err, messagectl.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("message not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
