package catalog

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("book not found")
)

// Book represents one entry in the store catalog. The title is the
// unique key; books never change after the catalog is seeded.
type Book struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}

// Repository provides read access to the catalog.
type Repository interface {
	List() []Book
	FindByTitle(title string) (Book, error)
}

// InMemoryRepository holds the fixed seed list, indexed by title.
// The catalog is read-only after construction so lookups need no lock,
// but the RWMutex keeps the type safe should seeding ever move.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	books map[string]Book
}

func NewInMemoryRepository(seed []Book) *InMemoryRepository {
	r := &InMemoryRepository{
		order: make([]string, 0, len(seed)),
		books: make(map[string]Book, len(seed)),
	}
	for _, b := range seed {
		if _, ok := r.books[b.Title]; ok {
			continue
		}
		r.order = append(r.order, b.Title)
		r.books[b.Title] = b
	}
	return r
}

func (r *InMemoryRepository) List() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Book, 0, len(r.order))
	for _, title := range r.order {
		out = append(out, r.books[title])
	}
	return out
}

// FindByTitle does an exact, case-sensitive lookup.
func (r *InMemoryRepository) FindByTitle(title string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[title]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}
