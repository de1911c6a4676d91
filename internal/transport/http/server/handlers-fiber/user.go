package handlers_fiber

import (
	"net/http"

	"github.com/draganczukp/lldap/internal/api"
	"github.com/draganczukp/lldap/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns users matching the optional filter in the request body.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	var body api.ListUsersRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			h.log.Errorw("failed to parse body", "error", err.Error())
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
		}
	}

	filter, err := mapper.FromAPIFilter(body.Filter)
	if err != nil {
		h.log.Errorw("failed to decode filter", "error", err.Error())
		return writeError(c, err)
	}

	users, err := h.uc.ListUsers(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.UserDetails(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateUser creates a directory user.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.CreateUser(c.Context(), mapper.FromAPICreateUser(body)); err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusCreated)
}

// UpdateUser applies a partial update to a user.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.UpdateUser(c.Context(), mapper.FromAPIUpdateUser(c.Params("id"), body)); err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// GetUserGroups returns the groups a user belongs to.
func (h *Handler) GetUserGroups(c *fiber.Ctx) error {
	groups, err := h.uc.UserGroups(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get user groups", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		UserID string             `json:"user_id"`
		Groups []api.GroupSummary `json:"groups"`
	}{
		UserID: c.Params("id"),
		Groups: mapper.ToAPIGroupSummaryList(groups),
	}
	return c.Status(http.StatusOK).JSON(resp)
}
