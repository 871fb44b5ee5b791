package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerFixture() (*RevenueRecalcHandler, *MockResinLotRepository, *MockSaleItemRepository) {
	lots := &MockResinLotRepository{}
	items := &MockSaleItemRepository{}
	publisher := &MockEventPublisher{}
	svc := NewRevenueRecalcService(lots, items, publisher, zap.NewNop())
	return NewRevenueRecalcHandler(svc, zap.NewNop()), lots, items
}

func TestRevenueRecalcHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores lot events written by the recompute pass itself", func(t *testing.T) {
		handler, lots, _ := newHandlerFixture()

		ownerID := uuid.New()
		lot := lotWithRevenue(t, ownerID, date(2024, time.March, 1), nil, 0)
		event := order.NewResinLotChangedEvent(&lot, order.ChangeActionUpdated, shared.OriginRecompute)

		err := handler.Handle(ctx, event)

		require.NoError(t, err)
		lots.AssertNotCalled(t, "ListForOwner", mock.Anything, mock.Anything)
	})

	t.Run("user lot edits trigger a recompute", func(t *testing.T) {
		handler, lots, items := newHandlerFixture()

		ownerID := uuid.New()
		lot := lotWithRevenue(t, ownerID, date(2024, time.March, 1), nil, 0)
		lots.On("ListForOwner", ctx, ownerID).Return([]order.ResinLot{lot}, nil)
		items.On("ListForOwner", ctx, ownerID).Return([]order.SaleItem{}, nil)

		event := order.NewResinLotChangedEvent(&lot, order.ChangeActionUpdated, shared.OriginUser)

		err := handler.Handle(ctx, event)

		require.NoError(t, err)
		lots.AssertCalled(t, "ListForOwner", ctx, ownerID)
	})

	t.Run("sale item changes trigger a recompute", func(t *testing.T) {
		handler, lots, items := newHandlerFixture()

		ownerID := uuid.New()
		sale := saleAt(t, ownerID, 15, date(2024, time.March, 10))
		lots.On("ListForOwner", ctx, ownerID).Return([]order.ResinLot{}, nil)
		items.On("ListForOwner", ctx, ownerID).Return([]order.SaleItem{sale}, nil)

		err := handler.Handle(ctx, order.NewSaleItemChangedEvent(&sale, order.ChangeActionCreated))

		require.NoError(t, err)
		lots.AssertCalled(t, "ListForOwner", ctx, ownerID)
	})

	t.Run("subscribes to sale item and lot changes", func(t *testing.T) {
		handler, _, _ := newHandlerFixture()

		types := handler.EventTypes()

		assert.Contains(t, types, order.EventTypeSaleItemChanged)
		assert.Contains(t, types, order.EventTypeResinLotChanged)
		assert.NotContains(t, types, order.EventTypeResinLotsRecalculated)
	})
}
