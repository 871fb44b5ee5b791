package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSale(t *testing.T, ownerID uuid.UUID, name, buyer string, day int) *order.SaleItem {
	t.Helper()
	item, err := order.NewSaleItem(ownerID, name, decimal.NewFromInt(15), order.SaleLocationWallapop,
		time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC), buyer)
	require.NoError(t, err)
	return item
}

func TestGormSaleItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by ID", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		ownerID := uuid.New()
		item := newSale(t, ownerID, "Dragon", "Ana", 3)

		require.NoError(t, repo.Save(ctx, item))

		found, err := repo.FindByIDForOwner(ctx, ownerID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dragon", found.ItemName)
		assert.Equal(t, "Ana", found.BuyerName)
		assert.Nil(t, found.ClientID)
	})

	t.Run("owner scoping hides other owners' items", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		item := newSale(t, uuid.New(), "Dragon", "Ana", 3)
		require.NoError(t, repo.Save(ctx, item))

		_, err := repo.FindByIDForOwner(ctx, uuid.New(), item.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find by client ID", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		ownerID := uuid.New()
		clientID := uuid.New()

		linked := newSale(t, ownerID, "Dragon", "Ana", 3)
		linked.BindClient(clientID)
		require.NoError(t, repo.Save(ctx, linked))
		require.NoError(t, repo.Save(ctx, newSale(t, ownerID, "Knight", "Luis", 4)))

		items, err := repo.FindByClientID(ctx, ownerID, clientID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, linked.ID, items[0].ID)
	})

	t.Run("search matches item and buyer names", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		ownerID := uuid.New()
		require.NoError(t, repo.Save(ctx, newSale(t, ownerID, "Dragon", "Ana", 3)))
		require.NoError(t, repo.Save(ctx, newSale(t, ownerID, "Knight", "Luis", 4)))

		filter := shared.DefaultFilter()
		filter.Search = "drag"

		items, err := repo.FindAllForOwner(ctx, ownerID, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Dragon", items[0].ItemName)
	})

	t.Run("filter by delivered", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		ownerID := uuid.New()
		delivered := newSale(t, ownerID, "Dragon", "Ana", 3)
		delivered.MarkDelivered()
		require.NoError(t, repo.Save(ctx, delivered))
		require.NoError(t, repo.Save(ctx, newSale(t, ownerID, "Knight", "Luis", 4)))

		filter := shared.DefaultFilter()
		filter.Filters["delivered"] = true

		items, err := repo.FindAllForOwner(ctx, ownerID, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].Delivered)
	})

	t.Run("delete", func(t *testing.T) {
		repo := NewGormSaleItemRepository(setupTestDB(t))
		ownerID := uuid.New()
		item := newSale(t, ownerID, "Dragon", "Ana", 3)
		require.NoError(t, repo.Save(ctx, item))

		require.NoError(t, repo.DeleteForOwner(ctx, ownerID, item.ID))
		assert.ErrorIs(t, repo.DeleteForOwner(ctx, ownerID, item.ID), shared.ErrNotFound)
	})
}
