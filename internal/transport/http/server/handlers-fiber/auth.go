package handlers_fiber

import (
	"net/http"

	"casa-do-pai/internal/api"
	"casa-do-pai/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostLogin verifies credentials and returns the normalized profile.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	profile, err := h.uc.Login(c.Context(), body.Email, body.Senha)
	if err != nil {
		h.log.Infow("login rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{Usuario: mapper.ToAPIProfile(*profile)})
}

// PostRecoverPassword issues a recovery token and mails the reset link.
func (h *Handler) PostRecoverPassword(c *fiber.Ctx) error {
	var body api.RecoveryRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.RequestPasswordRecovery(c.Context(), body.Email); err != nil {
		h.log.Errorw("failed to process password recovery", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "recovery email sent"})
}
