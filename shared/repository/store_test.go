package repository_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"casa/shared/repository"
)

type record struct {
	ID   string
	Name string
}

func TestStore_InsertPreservesOrder(t *testing.T) {
	store := repository.NewStore[record]()

	store.Insert("b", record{ID: "b", Name: "second"})
	store.Insert("a", record{ID: "a", Name: "first"})
	store.Insert("c", record{ID: "c", Name: "third"})

	all := store.All()

	assert.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestStore_InsertExistingIDKeepsPosition(t *testing.T) {
	store := repository.NewStore[record]()

	store.Insert("a", record{ID: "a", Name: "original"})
	store.Insert("b", record{ID: "b", Name: "second"})
	store.Insert("a", record{ID: "a", Name: "overwritten"})

	all := store.All()

	assert.Len(t, all, 2)
	assert.Equal(t, "overwritten", all[0].Name)
	assert.Equal(t, "b", all[1].ID)
}

func TestStore_Replace(t *testing.T) {
	store := repository.NewStore[record]()

	store.Insert("a", record{ID: "a", Name: "original"})

	assert.True(t, store.Replace("a", record{ID: "a", Name: "replaced"}))
	assert.False(t, store.Replace("missing", record{ID: "missing"}))

	got, ok := store.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "replaced", got.Name)
}

func TestStore_Delete(t *testing.T) {
	store := repository.NewStore[record]()

	store.Insert("a", record{ID: "a"})
	store.Insert("b", record{ID: "b"})

	assert.True(t, store.Delete("a"))
	assert.False(t, store.Delete("a"))

	all := store.All()
	assert.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestStore_FindAndFilter(t *testing.T) {
	store := repository.NewStore[record]()

	store.Insert("a", record{ID: "a", Name: "match"})
	store.Insert("b", record{ID: "b", Name: "other"})
	store.Insert("c", record{ID: "c", Name: "match"})

	found, ok := store.Find(func(r record) bool { return r.Name == "match" })
	assert.True(t, ok)
	assert.Equal(t, "a", found.ID)

	_, ok = store.Find(func(r record) bool { return r.Name == "absent" })
	assert.False(t, ok)

	matches := store.Filter(func(r record) bool { return r.Name == "match" })
	assert.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "c", matches[1].ID)

	assert.Empty(t, store.Filter(func(r record) bool { return false }))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := repository.NewStore[record]()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func(n int) {
			defer wg.Done()

			id := fmt.Sprintf("id-%d", n)
			store.Insert(id, record{ID: id})
		}(i)

		go func() {
			defer wg.Done()

			store.All()
		}()
	}

	wg.Wait()

	assert.Len(t, store.All(), 50)
}
