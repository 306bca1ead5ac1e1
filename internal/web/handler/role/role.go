// Package role provides the role management API handlers.
package role

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	rolectl "github.com/roomwatch/roomwatch/internal/db/controller/role"
	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/perm"
	"github.com/roomwatch/roomwatch/internal/web/handler"
	"github.com/roomwatch/roomwatch/internal/web/middleware/permit"
)

// Path is the base path of the role API, scoped by room.
const Path = handler.APIPath + "/rooms/:room/roles"

// CreatePayload is the request body for role creation and update.
// Permission states arrive as the raw -1/0/1 column encoding and are
// validated against the tri-state before anything reaches storage.
type CreatePayload struct {
	Name           string                                      `json:"name" validate:"required,max=100"`
	Color          *string                                     `json:"color" validate:"omitempty,hexcolor"`
	Position       int                                         `json:"position"`
	Permissions    map[models.PermissionFlag]models.PermissionState `json:"permissions"`
	MessageTimeout models.Timeout                              `json:"messageTimeout"`
}

// AssignPayload is the request body for role assignment.
type AssignPayload struct {
	UserID string `json:"userId" validate:"required"`
}

// Service is the role handler service.
type Service struct {
	handler.Service

	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the role handler.
var Handler = Service{}

// Init initializes the role handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, permService *perm.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Get(Path,
		permit.RequireFlag(permService, models.FlagRoleView, "room"),
		s.List,
	)
	app.Post(Path,
		permit.RequireFlag(permService, models.FlagRoleCreate, "room"),
		s.Create,
	)
	app.Put(Path+"/:role",
		permit.RequireFlag(permService, models.FlagRoleUpdate, "room"),
		s.Update,
	)
	app.Delete(Path+"/:role",
		permit.RequireFlag(permService, models.FlagRoleDelete, "room"),
		s.Delete,
	)
	app.Post(Path+"/:role/assignments",
		permit.RequireFlag(permService, models.FlagRoleUpdate, "room"),
		s.Assign,
	)
	app.Delete(Path+"/:role/assignments/:user",
		permit.RequireFlag(permService, models.FlagRoleUpdate, "room"),
		s.Unassign,
	)
}

// List returns the room's roles in resolution order.
func (s *Service) List(c *fiber.Ctx) error {
	list, err := rolectl.ListByRoomID(s.db, c.Params("room"))
	if err != nil {
		log.Error().Err(err).Str("room_id", c.Params("room")).Msg("failed to list roles")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(list)
}

// Create builds a role from the payload and persists it. Unknown flags in
// the payload map and invalid tri-state values are rejected.
func (s *Service) Create(c *fiber.Ctx) error {
	var payload CreatePayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	newRole := models.Role{
		RoomID:         c.Params("room"),
		Name:           payload.Name,
		Color:          payload.Color,
		Position:       payload.Position,
		Permissions:    models.UniformSet(models.PermUnset),
		MessageTimeout: payload.MessageTimeout,
	}

	for flag, state := range payload.Permissions {
		if !knownFlag(flag) {
			return c.Status(fiber.StatusBadRequest).SendString("unknown permission flag " + string(flag))
		}

		newRole.Permissions.Set(flag, state)
	}

	created, err := rolectl.Create(s.db, &newRole)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPermissionState) || errors.Is(err, models.ErrInvalidTimeout) {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}

		log.Error().Err(err).Str("room_id", newRole.RoomID).Msg("failed to create role")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces a role's name, color, position, permissions and timeout.
func (s *Service) Update(c *fiber.Ctx) error {
	existing, err := rolectl.ByID(s.db, c.Params("role"))
	if err != nil {
		if errors.Is(err, rolectl.ErrRoleNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("role not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	var payload CreatePayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	existing.Name = payload.Name
	existing.Color = payload.Color
	existing.Position = payload.Position
	existing.MessageTimeout = payload.MessageTimeout
	existing.Permissions = models.UniformSet(models.PermUnset)

	for flag, state := range payload.Permissions {
		if !knownFlag(flag) {
			return c.Status(fiber.StatusBadRequest).SendString("unknown permission flag " + string(flag))
		}

		existing.Permissions.Set(flag, state)
	}

	updated, err := rolectl.Update(s.db, existing)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPermissionState) || errors.Is(err, models.ErrInvalidTimeout) {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}

		log.Error().Err(err).Str("role_id", existing.ID).Msg("failed to update role")

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.JSON(updated)
}

// Delete removes a role.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := rolectl.Delete(s.db, c.Params("role")); err != nil {
		if errors.Is(err, rolectl.ErrRoleNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("role not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Assign links a user to a role.
func (s *Service) Assign(c *fiber.Ctx) error {
	var payload AssignPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid request body")
	}

	if err := s.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	assignment, err := rolectl.Assign(s.db, payload.UserID, c.Params("role"))
	if err != nil {
		switch {
		case errors.Is(err, rolectl.ErrRoleNotFound):
			return c.Status(fiber.StatusNotFound).SendString("role not found")
		case errors.Is(err, rolectl.ErrAlreadyAssigned):
			return c.Status(fiber.StatusConflict).SendString("role already assigned")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// Unassign removes a user-role link.
func (s *Service) Unassign(c *fiber.Ctx) error {
	if err := rolectl.Unassign(s.db, c.Params("user"), c.Params("role")); err != nil {
		if errors.Is(err, rolectl.ErrAssignmentNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("assignment not found")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func knownFlag(flag models.PermissionFlag) bool {
	for _, known := range models.Flags {
		if flag == known {
			return true
		}
	}

	return false
}
