package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

type MockResinLotRepository struct {
	mock.Mock
}

func (m *MockResinLotRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.ResinLot, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ResinLot), args.Error(1)
}

func (m *MockResinLotRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.ResinLot, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ResinLot), args.Error(1)
}

func (m *MockResinLotRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.ResinLot, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ResinLot), args.Error(1)
}

func (m *MockResinLotRepository) Save(ctx context.Context, lot *order.ResinLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockResinLotRepository) SaveBatch(ctx context.Context, lots []*order.ResinLot) error {
	args := m.Called(ctx, lots)
	return args.Error(0)
}

func (m *MockResinLotRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockResinLotRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockSaleItemRepository struct {
	mock.Mock
}

func (m *MockSaleItemRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.SaleItem, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.SaleItem), args.Error(1)
}

func (m *MockSaleItemRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.SaleItem, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.SaleItem), args.Error(1)
}

func (m *MockSaleItemRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.SaleItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.SaleItem), args.Error(1)
}

func (m *MockSaleItemRepository) FindByClientID(ctx context.Context, ownerID, clientID uuid.UUID) ([]order.SaleItem, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.SaleItem), args.Error(1)
}

func (m *MockSaleItemRepository) Save(ctx context.Context, item *order.SaleItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSaleItemRepository) SaveBatch(ctx context.Context, items []*order.SaleItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockSaleItemRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockSaleItemRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}
