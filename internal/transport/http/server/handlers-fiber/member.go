package handlers_fiber

import (
	"net/http"

	"casa-do-pai/internal/api"
	"casa-do-pai/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetMembers lists every member with their group names.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	members, err := h.uc.Members(c.Context())
	if err != nil {
		h.log.Errorw("failed to list members", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMemberList(members))
}

// GetMember returns a single member with group and leader names.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	id, err := memberID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	m, err := h.uc.Member(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*m))
}

// PostMember registers a new member.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body api.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	id, err := h.uc.CreateMember(c.Context(), mapper.FromAPINewMember(body))
	if err != nil {
		h.log.Infow("registration rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.CreatedResponse{
		Message: "member registered",
		ID:      id,
	})
}

// PutMember applies a partial update to a member.
func (h *Handler) PutMember(c *fiber.Ctx) error {
	id, err := memberID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.UpdateMember(c.Context(), id, mapper.FromAPIMemberUpdate(body)); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "member updated"})
}

// DeleteMember removes a member and their dependent rows.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	id, err := memberID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteMember(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "member deleted"})
}
