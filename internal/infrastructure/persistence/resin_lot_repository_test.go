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

func newLot(t *testing.T, ownerID uuid.UUID, day int) *order.ResinLot {
	t.Helper()
	lot, err := order.NewResinLot(ownerID,
		time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC), nil,
		decimal.NewFromInt(2), decimal.NewFromInt(30), decimal.Zero,
		order.ResinLotStatusPending)
	require.NoError(t, err)
	return lot
}

func TestGormResinLotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by ID", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		lot := newLot(t, ownerID, 1)

		require.NoError(t, repo.Save(ctx, lot))

		found, err := repo.FindByIDForOwner(ctx, ownerID, lot.ID)
		require.NoError(t, err)
		assert.Equal(t, lot.ID, found.ID)
		assert.True(t, found.Quantity.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, order.ResinLotStatusPending, found.Status)
	})

	t.Run("owner scoping hides other owners' lots", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		lot := newLot(t, ownerID, 1)
		require.NoError(t, repo.Save(ctx, lot))

		_, err := repo.FindByIDForOwner(ctx, uuid.New(), lot.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("list for owner is ordered by purchase date", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		require.NoError(t, repo.Save(ctx, newLot(t, ownerID, 20)))
		require.NoError(t, repo.Save(ctx, newLot(t, ownerID, 5)))
		require.NoError(t, repo.Save(ctx, newLot(t, uuid.New(), 1)))

		lots, err := repo.ListForOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, lots, 2)
		assert.True(t, lots[0].PurchaseDate.Before(lots[1].PurchaseDate))
	})

	t.Run("save batch persists updated revenue", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		first := newLot(t, ownerID, 1)
		second := newLot(t, ownerID, 2)
		require.NoError(t, repo.SaveBatch(ctx, []*order.ResinLot{first, second}))

		first.ApplyAttribution(decimal.NewFromInt(75))
		require.NoError(t, repo.SaveBatch(ctx, []*order.ResinLot{first}))

		found, err := repo.FindByIDForOwner(ctx, ownerID, first.ID)
		require.NoError(t, err)
		assert.True(t, found.GrossRevenue.Equal(decimal.NewFromInt(75)))
	})

	t.Run("filter by status", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		lot := newLot(t, ownerID, 1)
		end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, lot.Update(lot.PurchaseDate, &end, lot.Quantity, lot.Cost, order.ResinLotStatusDelivered))
		require.NoError(t, repo.Save(ctx, lot))
		require.NoError(t, repo.Save(ctx, newLot(t, ownerID, 2)))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = "delivered"

		lots, err := repo.FindAllForOwner(ctx, ownerID, filter)
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, order.ResinLotStatusDelivered, lots[0].Status)

		count, err := repo.CountForOwner(ctx, ownerID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete", func(t *testing.T) {
		repo := NewGormResinLotRepository(setupTestDB(t))
		ownerID := uuid.New()
		lot := newLot(t, ownerID, 1)
		require.NoError(t, repo.Save(ctx, lot))

		require.NoError(t, repo.DeleteForOwner(ctx, ownerID, lot.ID))
		assert.ErrorIs(t, repo.DeleteForOwner(ctx, ownerID, lot.ID), shared.ErrNotFound)
	})
}
