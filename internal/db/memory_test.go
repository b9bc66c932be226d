package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kamau-dev/butchery-backend/internal/db"
)

type testDoc struct {
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

func TestMemoryStoreCreateAndList(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()

	id1, err := store.Create(ctx, "items", testDoc{Name: "first", Price: 1.5})
	assert.NoError(t, err)
	id2, err := store.Create(ctx, "items", testDoc{Name: "second", Price: 2.5})
	assert.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	// ids are well-formed ObjectIDs, like the real adapter returns
	_, err = primitive.ObjectIDFromHex(id1)
	assert.NoError(t, err)

	docs, err := store.List(ctx, "items")
	assert.NoError(t, err)
	assert.Len(t, docs, 2)

	// insertion order preserved
	assert.Equal(t, "first", docs[0]["name"])
	assert.Equal(t, "second", docs[1]["name"])

	empty, err := store.List(ctx, "nothing-here")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStoreUpdateByID(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, "items", testDoc{Name: "steak", Price: 12})
	assert.NoError(t, err)

	t.Run("updates the matched document", func(t *testing.T) {
		err := store.UpdateByID(ctx, "items", id, bson.M{"price": 14.0})
		assert.NoError(t, err)

		docs, _ := store.List(ctx, "items")
		assert.Equal(t, 14.0, docs[0]["price"])
		assert.Equal(t, "steak", docs[0]["name"])
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		err := store.UpdateByID(ctx, "items", "not-an-object-id", bson.M{"price": 1.0})
		assert.ErrorIs(t, err, db.ErrInvalidID)
	})

	t.Run("reports a missing document", func(t *testing.T) {
		missing := primitive.NewObjectID().Hex()
		err := store.UpdateByID(ctx, "items", missing, bson.M{"price": 1.0})
		assert.ErrorIs(t, err, db.ErrNotFound)
	})
}

func TestMemoryStoreCollections(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()

	names, err := store.Collections(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)

	_, _ = store.Create(ctx, "order", testDoc{Name: "o"})
	_, _ = store.Create(ctx, "butcheritem", testDoc{Name: "b"})

	names, err = store.Collections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"butcheritem", "order"}, names)

	assert.NoError(t, store.Ping(ctx))
}

func TestListReturnsCopies(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "items", testDoc{Name: "original", Price: 3})
	assert.NoError(t, err)

	docs, _ := store.List(ctx, "items")
	docs[0]["name"] = "mutated"

	again, _ := store.List(ctx, "items")
	assert.Equal(t, "original", again[0]["name"])
}
