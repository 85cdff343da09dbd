package cart

import "sync"

// Repository hands out the cart for a session key, creating it on first
// use. Carts live for the process lifetime only.
type Repository interface {
	GetOrCreate(sessionKey string) *Cart
	Remove(sessionKey string)
}

// InMemoryRepository maps session keys to live carts. The map lock is
// only held for lookups; each cart carries its own lock.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]*Cart)}
}

func (r *InMemoryRepository) GetOrCreate(sessionKey string) *Cart {
	r.mu.RLock()
	c, ok := r.carts[sessionKey]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[sessionKey]; ok {
		return c
	}
	c = New()
	r.carts[sessionKey] = c
	return c
}

func (r *InMemoryRepository) Remove(sessionKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionKey)
}
