package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vultuk/online-bookstore-final-assessment/internal/user"
)

// Handler exposes the checkout pipeline over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.processCheckout)
}

func (h *Handler) processCheckout(c *fiber.Ctx) error {
	sessionKey, err := user.GetEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Process(sessionKey, *form)
	if err != nil {
		return checkoutError(c, err)
	}

	body := fiber.Map{
		"message": "Order confirmed",
		"order":   result.Order.Record(),
	}
	if result.Saved.IsPositive() {
		body["saved"] = result.Saved.StringFixed(2)
	}
	if result.Notice != "" {
		body["notice"] = result.Notice
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

func checkoutError(c *fiber.Ctx, err error) error {
	var missing MissingFieldError
	var declined PaymentDeclinedError
	switch {
	case errors.Is(err, ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "your cart is empty"})
	case errors.As(err, &missing):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": missing.Error()})
	case errors.As(err, &declined):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"message": declined.Message + ", please try another payment method"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
