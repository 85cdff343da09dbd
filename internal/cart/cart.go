package cart

import (
	"errors"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vultuk/online-bookstore-final-assessment/internal/catalog"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Line is one (book, quantity) entry in a cart. The line keeps its own
// copy of the book so price lookups never go back to the catalog.
type Line struct {
	Book     catalog.Book `json:"book"`
	Quantity int          `json:"quantity"`
}

// Cart holds the lines for one session. Every method takes the cart's
// own lock, so unrelated sessions never contend with each other.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// ParseQuantity converts the raw form value into an integer. Anything
// that is not an integer is rejected before any cart mutation happens.
func ParseQuantity(text string) (int, error) {
	qty, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}

// AddBook adds quantity copies of the book, incrementing an existing
// line for the same title. Zero or negative quantities are an error.
func (c *Cart) AddBook(book catalog.Book, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok := c.lines[book.Title]; ok {
		line.Quantity += quantity
		return nil
	}
	c.lines[book.Title] = &Line{Book: book, Quantity: quantity}
	return nil
}

// UpdateQuantity replaces the quantity of an existing line. Updating to
// zero or below removes the line; that is the documented way to delete
// one, not an error. Unknown titles are a no-op.
func (c *Cart) UpdateQuantity(title string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		delete(c.lines, title)
		return
	}
	if line, ok := c.lines[title]; ok {
		line.Quantity = quantity
	}
}

// RemoveBook removes the line if present; absent titles are a no-op.
func (c *Cart) RemoveBook(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, title)
}

// TotalItems sums quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItemsLocked()
}

// TotalPrice sums price*quantity in a single pass, each price resolved
// from the line's own book copy.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPriceLocked()
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*Line)
}

// Items returns a snapshot of the lines for safe external iteration.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// Checkout runs fn while holding the cart's lock, so no concurrent
// add/update/remove can interleave with a checkout attempt. fn receives
// a snapshot of the lines and the subtotal; when it returns drain=true
// the cart is emptied before the lock is released, which guarantees a
// given cart is drained by at most one successful checkout.
func (c *Cart) Checkout(fn func(items []Line, subtotal decimal.Decimal) (drain bool, err error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	drain, err := fn(c.itemsLocked(), c.totalPriceLocked())
	if drain {
		c.lines = make(map[string]*Line)
	}
	return err
}

func (c *Cart) totalItemsLocked() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) totalPriceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Book.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) itemsLocked() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}
