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

// GormResinLotRepository implements ResinLotRepository using GORM
type GormResinLotRepository struct {
	db *gorm.DB
}

// NewGormResinLotRepository creates a new GormResinLotRepository
func NewGormResinLotRepository(db *gorm.DB) *GormResinLotRepository {
	return &GormResinLotRepository{db: db}
}

// FindByIDForOwner finds a resin lot by ID within an owner scope
func (r *GormResinLotRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.ResinLot, error) {
	var model models.ResinLotModel
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

// FindAllForOwner finds resin lots for an owner matching the filter
func (r *GormResinLotRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.ResinLot, error) {
	var lotModels []models.ResinLotModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ResinLotModel{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Find(&lotModels).Error; err != nil {
		return nil, err
	}

	lots := make([]order.ResinLot, len(lotModels))
	for i, model := range lotModels {
		lots[i] = *model.ToDomain()
	}
	return lots, nil
}

// ListForOwner returns every resin lot for an owner
func (r *GormResinLotRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.ResinLot, error) {
	var lotModels []models.ResinLotModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("purchase_date ASC").
		Find(&lotModels).Error; err != nil {
		return nil, err
	}

	lots := make([]order.ResinLot, len(lotModels))
	for i, model := range lotModels {
		lots[i] = *model.ToDomain()
	}
	return lots, nil
}

// Save creates or updates a resin lot
func (r *GormResinLotRepository) Save(ctx context.Context, lot *order.ResinLot) error {
	var model models.ResinLotModel
	model.FromDomain(lot)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveBatch creates or updates multiple resin lots
func (r *GormResinLotRepository) SaveBatch(ctx context.Context, lots []*order.ResinLot) error {
	if len(lots) == 0 {
		return nil
	}
	lotModels := make([]*models.ResinLotModel, len(lots))
	for i, lot := range lots {
		lotModels[i] = &models.ResinLotModel{}
		lotModels[i].FromDomain(lot)
	}
	return r.db.WithContext(ctx).Save(lotModels).Error
}

// DeleteForOwner deletes a resin lot within an owner scope
func (r *GormResinLotRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ResinLotModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts resin lots for an owner matching the filter
func (r *GormResinLotRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ResinLotModel{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormResinLotRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("purchase_date DESC")
	}

	return query
}

func (r *GormResinLotRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "open":
			if value == true {
				query = query.Where("end_date IS NULL")
			} else {
				query = query.Where("end_date IS NOT NULL")
			}
		}
	}
	return query
}

var _ order.ResinLotRepository = (*GormResinLotRepository)(nil)
