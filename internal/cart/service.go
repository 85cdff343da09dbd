package cart

import (
	"github.com/shopspring/decimal"

	"github.com/vultuk/online-bookstore-final-assessment/internal/catalog"
)

// View is the cart as returned to callers: a line snapshot plus totals.
type View struct {
	Items      []Line          `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Service orchestrates cart operations. Quantities arrive as raw form
// text and are parsed here, before any cart is touched.
type Service struct {
	repo    Repository
	catalog catalog.ServiceInterface
}

func NewService(repo Repository, cat catalog.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: cat}
}

// Cart returns the live cart for a session key.
func (s *Service) Cart(sessionKey string) *Cart {
	return s.repo.GetOrCreate(sessionKey)
}

func (s *Service) Add(sessionKey, title, quantityText string) (View, error) {
	qty, err := ParseQuantity(quantityText)
	if err != nil {
		return View{}, err
	}
	book, err := s.catalog.FindByTitle(title)
	if err != nil {
		return View{}, err
	}
	c := s.repo.GetOrCreate(sessionKey)
	if err := c.AddBook(book, qty); err != nil {
		return View{}, err
	}
	return s.view(c), nil
}

func (s *Service) Update(sessionKey, title, quantityText string) (View, error) {
	qty, err := ParseQuantity(quantityText)
	if err != nil {
		return View{}, err
	}
	c := s.repo.GetOrCreate(sessionKey)
	c.UpdateQuantity(title, qty)
	return s.view(c), nil
}

func (s *Service) Remove(sessionKey, title string) View {
	c := s.repo.GetOrCreate(sessionKey)
	c.RemoveBook(title)
	return s.view(c)
}

func (s *Service) Clear(sessionKey string) {
	s.repo.GetOrCreate(sessionKey).Clear()
}

func (s *Service) Get(sessionKey string) View {
	return s.view(s.repo.GetOrCreate(sessionKey))
}

func (s *Service) view(c *Cart) View {
	return View{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
