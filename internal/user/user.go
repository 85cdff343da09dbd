package user

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid email or password")
)

// User is a registered account. Passwords are stored as given; the
// store deliberately carries no hashing (see DESIGN.md).
type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

// Repository provides access to user accounts keyed by email.
// Email comparison is exact; two emails differing only in case are
// distinct accounts, matching the store's historical behavior.
type Repository interface {
	Get(email string) (User, error)
	Create(u User) error
}

// InMemoryRepository keeps accounts for the process lifetime.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{users: make(map[string]User, len(seed))}
	for _, u := range seed {
		r.users[u.Email] = u
	}
	return r
}

func (r *InMemoryRepository) Get(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) Create(u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return ErrEmailTaken
	}
	r.users[u.Email] = u
	return nil
}
