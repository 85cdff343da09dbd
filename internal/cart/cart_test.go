package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vultuk/online-bookstore-final-assessment/internal/catalog"
)

func book(title string, price float64) catalog.Book {
	return catalog.Book{Title: title, Category: "Fiction", Price: decimal.NewFromFloat(price)}
}

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity("3")
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	qty, err = ParseQuantity("-2")
	require.NoError(t, err)
	assert.Equal(t, -2, qty)

	_, err = ParseQuantity("abc")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ParseQuantity("1.5")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ParseQuantity("")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddBook(t *testing.T) {
	c := New()

	require.NoError(t, c.AddBook(book("The Great Gatsby", 10.99), 2))
	assert.Equal(t, 2, c.TotalItems())

	// same title increments the existing line
	require.NoError(t, c.AddBook(book("The Great Gatsby", 10.99), 3))
	assert.Equal(t, 5, c.TotalItems())
	assert.Len(t, c.Items(), 1)

	// zero and negative quantities are rejected before any mutation
	assert.ErrorIs(t, c.AddBook(book("1984", 13.99), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddBook(book("1984", 13.99), -1), ErrInvalidQuantity)
	assert.Len(t, c.Items(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("1984", 13.99), 5))

	c.UpdateQuantity("1984", 2)
	assert.Equal(t, 2, c.TotalItems())

	// zero or below removes the line, whatever it held before
	c.UpdateQuantity("1984", 0)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.AddBook(book("1984", 13.99), 5))
	c.UpdateQuantity("1984", -7)
	assert.True(t, c.IsEmpty())

	// unknown titles are a no-op, not an error
	c.UpdateQuantity("No Such Book", 3)
	assert.True(t, c.IsEmpty())
}

func TestRemoveBook(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("1984", 13.99), 1))

	c.RemoveBook("1984")
	assert.True(t, c.IsEmpty())

	// removing again is a no-op
	c.RemoveBook("1984")
	assert.True(t, c.IsEmpty())
}

func TestTotalPrice(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("The Great Gatsby", 10.99), 3))
	require.NoError(t, c.AddBook(book("1984", 13.99), 2))

	want := decimal.NewFromFloat(10.99).Mul(decimal.NewFromInt(3)).
		Add(decimal.NewFromFloat(13.99).Mul(decimal.NewFromInt(2)))
	assert.True(t, c.TotalPrice().Equal(want), "got %s want %s", c.TotalPrice(), want)
}

func TestTotalPriceSingleLine(t *testing.T) {
	for _, qty := range []int{1, 7, 250, 10000} {
		c := New()
		require.NoError(t, c.AddBook(book("The Great Gatsby", 10.99), qty))
		want := decimal.NewFromFloat(10.99).Mul(decimal.NewFromInt(int64(qty)))
		assert.True(t, c.TotalPrice().Equal(want))
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("1984", 13.99), 2))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 2, c.TotalItems(), "mutating the snapshot must not touch the cart")
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("1984", 13.99), 2))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCheckoutDrainsOnlyOnSuccess(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(book("1984", 13.99), 2))

	err := c.Checkout(func(items []Line, subtotal decimal.Decimal) (bool, error) {
		require.Len(t, items, 1)
		assert.True(t, subtotal.Equal(decimal.NewFromFloat(13.99).Mul(decimal.NewFromInt(2))))
		return false, ErrInvalidQuantity
	})
	assert.Error(t, err)
	assert.False(t, c.IsEmpty(), "failed checkout must leave the cart intact")

	err = c.Checkout(func(items []Line, subtotal decimal.Decimal) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty(), "successful checkout drains the cart")
}

func TestRepositoryGetOrCreate(t *testing.T) {
	repo := NewInMemoryRepository()

	a := repo.GetOrCreate("alice@example.com")
	b := repo.GetOrCreate("bob@example.com")
	assert.NotSame(t, a, b)

	// same key returns the same live cart
	require.NoError(t, a.AddBook(book("1984", 13.99), 1))
	assert.Equal(t, 1, repo.GetOrCreate("alice@example.com").TotalItems())
	assert.True(t, b.IsEmpty())

	repo.Remove("alice@example.com")
	assert.True(t, repo.GetOrCreate("alice@example.com").IsEmpty())
}
