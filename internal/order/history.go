package order

import (
	"sort"
	"sync"
)

// History is one user's order log. Appends only mark it dirty; the
// newest-first sort runs lazily on read, so a burst of appends costs
// one sort instead of one per insert.
type History struct {
	mu     sync.Mutex
	orders []Order
	sorted bool
}

func NewHistory() *History {
	return &History{sorted: true}
}

// Add appends an order. Histories grow by append and never shrink.
func (h *History) Add(o Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append(h.orders, o.clone())
	h.sorted = false
}

// Orders returns deep copies sorted by order date, newest first.
func (h *History) Orders() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.sorted {
		sort.SliceStable(h.orders, func(i, j int) bool {
			return h.orders[i].OrderDate.After(h.orders[j].OrderDate)
		})
		h.sorted = true
	}
	out := make([]Order, 0, len(h.orders))
	for _, o := range h.orders {
		out = append(out, o.clone())
	}
	return out
}

// Len reports how many orders the history holds.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

// Repository hands out the order history for a user email, creating it
// on first use.
type Repository interface {
	ForUser(email string) *History
}

// InMemoryRepository maps user emails to histories. Each history has
// its own lock; the map lock only covers lookups.
type InMemoryRepository struct {
	mu        sync.RWMutex
	histories map[string]*History
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{histories: make(map[string]*History)}
}

func (r *InMemoryRepository) ForUser(email string) *History {
	r.mu.RLock()
	h, ok := r.histories[email]
	r.mu.RUnlock()
	if ok {
		return h
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.histories[email]; ok {
		return h
	}
	h = NewHistory()
	r.histories[email] = h
	return h
}
