package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vultuk/online-bookstore-final-assessment/internal/user"
)

// Handler serves the authenticated user's order history.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	email, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.HistoryFor(email))
}
