package catalog

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the public catalog endpoints.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/books", h.listBooks)
	app.Get("/api/v1/book", h.getBook)
}

func (h *Handler) listBooks(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// getBook looks up a single book by exact title, passed as a query
// parameter because titles contain spaces.
func (h *Handler) getBook(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title is required"})
	}

	book, err := h.service.FindByTitle(title)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "book not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(book)
}
