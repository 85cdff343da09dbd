package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByTitle(t *testing.T) {
	repo := NewInMemoryRepository(Seed())

	b, err := repo.FindByTitle("The Great Gatsby")
	require.NoError(t, err)
	assert.Equal(t, "The Great Gatsby", b.Title)
	assert.Equal(t, "10.99", b.Price.StringFixed(2))

	// lookup is exact and case-sensitive
	_, err = repo.FindByTitle("the great gatsby")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByTitle("No Such Book")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListKeepsSeedOrder(t *testing.T) {
	seed := Seed()
	repo := NewInMemoryRepository(seed)

	got := repo.List()
	require.Len(t, got, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].Title, got[i].Title)
	}
}

func TestServiceEmptyTitle(t *testing.T) {
	s := NewService(NewInMemoryRepository(Seed()))
	_, err := s.FindByTitle("")
	assert.ErrorIs(t, err, ErrNotFound)
}
