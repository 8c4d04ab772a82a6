package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/persistence/models"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

type gormKeySetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeySetRepository creates a new GORM-based KeySetRepository implementation
func NewGormKeySetRepository(db *gorm.DB, logger logger.Logger) (keysets.KeySetRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &gormKeySetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeySetRepository) Create(ctx context.Context, keySet *keysets.KeySet) error {
	if err := keySet.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeySetModel{}
	model.FromDomain(keySet)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key set: %w", err)
	}

	r.logger.Info("Created key set with id ", keySet.ID)
	return nil
}

func (r *gormKeySetRepository) List(ctx context.Context, query *keysets.KeySetQuery) ([]*keysets.KeySet, error) {
	if query == nil {
		query = keysets.NewKeySetQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeySetModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeySetModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key sets: %w", err)
	}

	domainList := make([]*keysets.KeySet, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeySetRepository) GetByID(ctx context.Context, keySetID string) (*keysets.KeySet, error) {
	var model models.KeySetModel
	if err := r.db.WithContext(ctx).Where("id = ?", keySetID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", keysets.ErrNotFound, keySetID)
		}
		return nil, fmt.Errorf("failed to fetch key set: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeySetRepository) DeleteByID(ctx context.Context, keySetID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keySetID).Delete(&models.KeySetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key set: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %s", keysets.ErrNotFound, keySetID)
	}

	r.logger.Info("Deleted key set with id ", keySetID)
	return nil
}
