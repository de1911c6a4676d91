package handlers_fiber

import (
	"net/http"

	"github.com/draganczukp/lldap/internal/api"
	"github.com/draganczukp/lldap/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListGroups returns all groups with their member lists.
func (h *Handler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.uc.Groups(c.Context())
	if err != nil {
		h.log.Errorw("failed to list groups", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Groups []api.Group `json:"groups"`
	}{Groups: mapper.ToAPIGroupList(groups)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetGroup returns a group's id and display name.
func (h *Handler) GetGroup(c *fiber.Ctx) error {
	groupID, err := groupIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	group, err := h.uc.GroupDetails(c.Context(), groupID)
	if err != nil {
		h.log.Errorw("failed to get group", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Group api.GroupSummary `json:"group"`
	}{Group: mapper.ToAPIGroupSummary(*group)}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateGroup creates a group and returns its id.
func (h *Handler) CreateGroup(c *fiber.Ctx) error {
	var body api.CreateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	groupID, err := h.uc.CreateGroup(c.Context(), body.DisplayName)
	if err != nil {
		h.log.Errorw("failed to create group", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		GroupID int32 `json:"group_id"`
	}{GroupID: groupID}
	return c.Status(http.StatusCreated).JSON(resp)
}

// UpdateGroup applies a partial update to a group.
func (h *Handler) UpdateGroup(c *fiber.Ctx) error {
	groupID, err := groupIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.UpdateGroup(c.Context(), mapper.FromAPIUpdateGroup(groupID, body)); err != nil {
		h.log.Errorw("failed to update group", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// DeleteGroup removes a group.
func (h *Handler) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := groupIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteGroup(c.Context(), groupID); err != nil {
		h.log.Errorw("failed to delete group", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// AddMembership inserts a membership edge.
func (h *Handler) AddMembership(c *fiber.Ctx) error {
	var body api.MembershipRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.AddUserToGroup(c.Context(), body.UserID, body.GroupID); err != nil {
		h.log.Errorw("failed to add membership", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusCreated)
}

// RemoveMembership deletes a membership edge.
func (h *Handler) RemoveMembership(c *fiber.Ctx) error {
	var body api.MembershipRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalid, "invalid body"))
	}

	if err := h.uc.RemoveUserFromGroup(c.Context(), body.UserID, body.GroupID); err != nil {
		h.log.Errorw("failed to remove membership", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
