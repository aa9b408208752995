package handlers_fiber

import (
	"net/http"

	"casa-do-pai/internal/api"

	"github.com/gofiber/fiber/v2"
)

// PutPromoteMember promotes a member to group leader.
func (h *Handler) PutPromoteMember(c *fiber.Ctx) error {
	id, err := memberID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.PromoteMember(c.Context(), id); err != nil {
		h.log.Infow("promotion rejected", "member_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "member promoted to leader"})
}

// PutDemoteMember resets a leader back to a regular member.
func (h *Handler) PutDemoteMember(c *fiber.Ctx) error {
	id, err := memberID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DemoteMember(c.Context(), id); err != nil {
		h.log.Infow("demotion rejected", "member_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "leader demoted"})
}
