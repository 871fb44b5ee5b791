package importer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newWorkbookFixture() (*WorkbookService, *MockResinLotRepository, *MockSaleItemRepository, *MockClientResolver, *MockRecalculator, *MockEventPublisher) {
	lots := new(MockResinLotRepository)
	items := new(MockSaleItemRepository)
	clients := new(MockClientRepository)
	resolver := new(MockClientResolver)
	recalc := new(MockRecalculator)
	publisher := new(MockEventPublisher)
	svc := NewWorkbookService(lots, items, clients, resolver, recalc, publisher, zap.NewNop())
	return svc, lots, items, resolver, recalc, publisher
}

func saleItemsWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	writeSheet(f, SheetSaleItems,
		[]string{"item_name", "price", "location", "sale_date", "buyer_name", "delivered"},
		len(rows), func(i int) []interface{} { return rows[i] })
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestWorkbookService_Import(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("announces the import even when recalculation changed nothing", func(t *testing.T) {
		svc, lots, items, resolver, recalc, publisher := newWorkbookFixture()

		client, err := partner.NewClient(ownerID, "Ana", "", "", "")
		require.NoError(t, err)
		client.ClearDomainEvents()

		lots.On("SaveBatch", ctx, mock.Anything).Return(nil)
		items.On("SaveBatch", ctx, mock.Anything).Return(nil)
		resolver.On("ResolveOrCreate", ctx, ownerID, "Ana").Return(client, nil)
		recalc.On("RecalculateOwner", ctx, ownerID).Return(0, nil)
		publisher.On("Publish", ctx, mock.Anything).Return(nil)

		buf := saleItemsWorkbook(t,
			[]interface{}{"Dragon figure", "50", "shop", "2024-03-15", "Ana", "yes"},
		)

		summary, err := svc.Import(ctx, ownerID, buf)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.SaleItemsImported)
		assert.Equal(t, 0, summary.LotsRecalculated)

		require.Len(t, publisher.Published, 1)
		event, ok := publisher.Published[0].(*order.RecordsImportedEvent)
		require.True(t, ok)
		assert.Equal(t, order.EventTypeRecordsImported, event.EventType())
		assert.Equal(t, ownerID, event.OwnerID())
		assert.Equal(t, 1, event.SaleItemCount)
	})

	t.Run("announces the import even when recalculation fails", func(t *testing.T) {
		svc, lots, items, _, recalc, publisher := newWorkbookFixture()

		lots.On("SaveBatch", ctx, mock.Anything).Return(nil)
		items.On("SaveBatch", ctx, mock.Anything).Return(nil)
		recalc.On("RecalculateOwner", ctx, ownerID).Return(0, errors.New("db down"))
		publisher.On("Publish", ctx, mock.Anything).Return(nil)

		buf := saleItemsWorkbook(t,
			[]interface{}{"Keychain", "5", "shop", "2024-03-16", "", ""},
		)

		summary, err := svc.Import(ctx, ownerID, buf)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.SaleItemsImported)

		require.Len(t, publisher.Published, 1)
		_, ok := publisher.Published[0].(*order.RecordsImportedEvent)
		assert.True(t, ok)
	})

	t.Run("skips rows missing required fields and counts them", func(t *testing.T) {
		svc, lots, items, _, recalc, publisher := newWorkbookFixture()

		var saved []*order.SaleItem
		lots.On("SaveBatch", ctx, mock.Anything).Return(nil)
		items.On("SaveBatch", ctx, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).([]*order.SaleItem)
		}).Return(nil)
		recalc.On("RecalculateOwner", ctx, ownerID).Return(0, nil)
		publisher.On("Publish", ctx, mock.Anything).Return(nil)

		buf := saleItemsWorkbook(t,
			[]interface{}{"", "10", "shop", "2024-03-15", "", ""},
			[]interface{}{"Keychain", "10", "shop", "not a date", "", ""},
			[]interface{}{"Keychain", "10", "shop", "15/03/2024", "", "si"},
		)

		summary, err := svc.Import(ctx, ownerID, buf)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.RowsSkipped)
		assert.Equal(t, 1, summary.SaleItemsImported)
		require.Len(t, saved, 1)
		assert.Equal(t, "Keychain", saved[0].ItemName)
		assert.True(t, saved[0].Delivered)
	})
}
