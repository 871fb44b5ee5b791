package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/resinworks/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleItemRepository implements SaleItemRepository using GORM
type GormSaleItemRepository struct {
	db *gorm.DB
}

// NewGormSaleItemRepository creates a new GormSaleItemRepository
func NewGormSaleItemRepository(db *gorm.DB) *GormSaleItemRepository {
	return &GormSaleItemRepository{db: db}
}

// FindByIDForOwner finds a sale item by ID within an owner scope
func (r *GormSaleItemRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.SaleItem, error) {
	var model models.SaleItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOwner finds sale items for an owner matching the filter
func (r *GormSaleItemRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.SaleItem, error) {
	var itemModels []models.SaleItemModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SaleItemModel{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]order.SaleItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// ListForOwner returns every sale item for an owner
func (r *GormSaleItemRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.SaleItem, error) {
	var itemModels []models.SaleItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("sale_date ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]order.SaleItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindByClientID finds the sale items linked to a client
func (r *GormSaleItemRepository) FindByClientID(ctx context.Context, ownerID, clientID uuid.UUID) ([]order.SaleItem, error) {
	var itemModels []models.SaleItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND client_id = ?", ownerID, clientID).
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]order.SaleItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates or updates a sale item
func (r *GormSaleItemRepository) Save(ctx context.Context, item *order.SaleItem) error {
	var model models.SaleItemModel
	model.FromDomain(item)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveBatch creates or updates multiple sale items
func (r *GormSaleItemRepository) SaveBatch(ctx context.Context, items []*order.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	itemModels := make([]*models.SaleItemModel, len(items))
	for i, item := range items {
		itemModels[i] = &models.SaleItemModel{}
		itemModels[i].FromDomain(item)
	}
	return r.db.WithContext(ctx).Save(itemModels).Error
}

// DeleteForOwner deletes a sale item within an owner scope
func (r *GormSaleItemRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SaleItemModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts sale items for an owner matching the filter
func (r *GormSaleItemRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.SaleItemModel{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSaleItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("sale_date DESC")
	}

	return query
}

func (r *GormSaleItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(item_name) LIKE ? OR LOWER(buyer_name) LIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "location":
			query = query.Where("location = ?", value)
		case "delivered":
			query = query.Where("delivered = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}
	return query
}

var _ order.SaleItemRepository = (*GormSaleItemRepository)(nil)
