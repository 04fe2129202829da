package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// note is a minimal record type for exercising the generic store.
type note struct {
	ID    int
	Title string
	Body  string
}

func (n note) EntityID() int { return n.ID }

func (n note) WithEntityID(id int) note {
	n.ID = id
	return n
}

func TestStore_CreateThenGet(t *testing.T) {
	s := New[note]()

	created := s.Create(note{Title: "first", Body: "hello"})
	assert.Equal(t, 1, created.ID)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "hello", got.Body)
}

func TestStore_CreateIgnoresSuppliedID(t *testing.T) {
	s := New[note]()

	created := s.Create(note{ID: 99, Title: "first"})
	assert.Equal(t, 1, created.ID)
}

func TestStore_CreateAllocatesMaxPlusOne(t *testing.T) {
	s := New(
		note{ID: 1, Title: "one"},
		note{ID: 2, Title: "two"},
	)

	third := s.Create(note{Title: "three"})
	assert.Equal(t, 3, third.ID)

	// Deleting an interior id must not cause reuse of that id
	assert.True(t, s.Delete(2))
	fourth := s.Create(note{Title: "four"})
	assert.Equal(t, 4, fourth.ID)
}

func TestStore_CreateReusesTopIDAfterDelete(t *testing.T) {
	// Allocation derives from the current maximum, so deleting the
	// highest-numbered record makes its id come back. Matches the
	// reference backend.
	s := New(
		note{ID: 1, Title: "one"},
		note{ID: 2, Title: "two"},
	)

	assert.True(t, s.Delete(2))
	recreated := s.Create(note{Title: "again"})
	assert.Equal(t, 2, recreated.ID)
}

func TestStore_GetNotFound(t *testing.T) {
	s := New[note]()

	_, err := s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	s := New(note{ID: 1, Title: "one", Body: "keep me"})

	updated, err := s.Update(1, func(n note) note {
		n.Title = "changed"
		return n
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Title)
	assert.Equal(t, "keep me", updated.Body)

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStore_UpdateNotFound(t *testing.T) {
	s := New(note{ID: 1, Title: "one"})

	_, err := s.Update(7, func(n note) note {
		n.Title = "changed"
		return n
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// No mutation happened
	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := New(note{ID: 1, Title: "one"})

	assert.True(t, s.Delete(1))
	assert.Equal(t, 0, s.Len())

	// Second delete is not an error and changes nothing
	assert.False(t, s.Delete(1))
	assert.Equal(t, 0, s.Len())
}

func TestStore_ListInsertionOrder(t *testing.T) {
	s := New[note]()
	s.Create(note{Title: "a"})
	s.Create(note{Title: "b"})
	s.Create(note{Title: "c"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].Title, list[1].Title, list[2].Title})
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := New(note{ID: 1, Title: "one"})

	list := s.List()
	list[0].Title = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	id, err = ParseID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = ParseID("abc")
	assert.Error(t, err)

	_, err = ParseID("")
	assert.Error(t, err)
}
