package handlers_fiber

import (
	"net/http"

	"casa-do-pai/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetGroups lists every group.
func (h *Handler) GetGroups(c *fiber.Ctx) error {
	groups, err := h.uc.Groups(c.Context())
	if err != nil {
		h.log.Errorw("failed to list groups", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIGroupList(groups))
}

// GetGroupMembers lists the non-leader members of one group.
func (h *Handler) GetGroupMembers(c *fiber.Ctx) error {
	groupID, err := memberID(c, "idCelula")
	if err != nil {
		return writeError(c, err)
	}

	members, err := h.uc.GroupMembers(c.Context(), groupID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMemberList(members))
}
