package handlers_fiber

import (
	"net/http"

	"github.com/draganczukp/lldap/internal/api"

	"github.com/gofiber/fiber/v2"
)

// Bind verifies a user's password.
func (h *Handler) Bind(c *fiber.Ctx) error {
	var body api.BindRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.Bind(c.Context(), body.UserID, body.Password); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusOK)
}

// RegisterStart opens a password registration handshake.
func (h *Handler) RegisterStart(c *fiber.Ctx) error {
	var body api.RegisterStartRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	token, err := h.uc.RegisterStart(c.Context(), body.UserID)
	if err != nil {
		h.log.Errorw("failed to start registration", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.RegisterStartResponse{
		UserID: body.UserID,
		Token:  token,
	})
}

// RegisterFinish completes a password registration handshake.
func (h *Handler) RegisterFinish(c *fiber.Ctx) error {
	var body api.RegisterFinishRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.RegisterFinish(c.Context(), body.UserID, body.Token, body.Password); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusOK)
}
