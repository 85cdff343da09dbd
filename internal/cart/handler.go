package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vultuk/online-bookstore-final-assessment/internal/catalog"
	"github.com/vultuk/online-bookstore-final-assessment/internal/user"
)

// Handler delegates cart operations to the cart service. Quantities
// stay strings all the way down to ParseQuantity so malformed form
// input surfaces as an invalid-quantity error, not a decode fault.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Put("/api/v1/cart", h.updateCart)
	app.Delete("/api/v1/cart/item", h.removeFromCart)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartRequest struct {
	Title    string `json:"title"`
	Quantity string `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.Get(sessionKey))
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	view, err := h.service.Add(sessionKey, payload.Title, payload.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) updateCart(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	view, err := h.service.Update(sessionKey, payload.Title, payload.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	title := c.Query("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title is required"})
	}
	return c.JSON(h.service.Remove(sessionKey, title))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	h.service.Clear(sessionKey)
	return c.JSON(fiber.Map{"message": "cart cleared"})
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be a positive whole number"})
	case catalog.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "book not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
