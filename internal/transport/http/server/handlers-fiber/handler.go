// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/draganczukp/lldap/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the directory operations over HTTP using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// RegisterRoutes attaches all directory endpoints to the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/users/search", h.ListUsers)
	app.Post("/users", h.CreateUser)
	app.Get("/users/:id", h.GetUser)
	app.Patch("/users/:id", h.UpdateUser)
	app.Delete("/users/:id", h.DeleteUser)
	app.Get("/users/:id/groups", h.GetUserGroups)

	app.Get("/groups", h.ListGroups)
	app.Post("/groups", h.CreateGroup)
	app.Get("/groups/:id", h.GetGroup)
	app.Patch("/groups/:id", h.UpdateGroup)
	app.Delete("/groups/:id", h.DeleteGroup)

	app.Post("/memberships", h.AddMembership)
	app.Delete("/memberships", h.RemoveMembership)

	app.Post("/auth/bind", h.Bind)
	app.Post("/auth/register/start", h.RegisterStart)
	app.Post("/auth/register/finish", h.RegisterFinish)
}
