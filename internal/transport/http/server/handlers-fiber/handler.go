// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"casa-do-pai/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP surface using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes attaches every endpoint to the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/login", h.PostLogin)
	app.Post("/recuperar-senha", h.PostRecoverPassword)

	app.Get("/celulas", h.GetGroups)
	app.Get("/celulas/:idCelula/usuarios", h.GetGroupMembers)

	app.Get("/usuarios", h.GetMembers)
	app.Get("/usuarios/:id", h.GetMember)
	app.Post("/usuarios", h.PostMember)
	app.Put("/usuarios/:id", h.PutMember)
	app.Delete("/usuarios/:id", h.DeleteMember)

	app.Put("/usuarios/:id/tornar-lider", h.PutPromoteMember)
	app.Put("/usuarios/:id/rebaixar-lider", h.PutDemoteMember)
}
