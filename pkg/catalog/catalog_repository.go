package catalog

import (
	"context"

	"foodwise-backend/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetItems(ctx context.Context, category string) ([]*entities.FoodCatalogItem, error)
		SearchByName(ctx context.Context, prefix string, limit int) ([]*entities.FoodCatalogItem, error)
		GetByCategories(ctx context.Context, categories []string) ([]*entities.FoodCatalogItem, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetItems(ctx context.Context, category string) ([]*entities.FoodCatalogItem, error) {
	var items []*entities.FoodCatalogItem
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) SearchByName(ctx context.Context, prefix string, limit int) ([]*entities.FoodCatalogItem, error) {
	var items []*entities.FoodCatalogItem
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", prefix+"%").
		Order("name asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) GetByCategories(ctx context.Context, categories []string) ([]*entities.FoodCatalogItem, error) {
	var items []*entities.FoodCatalogItem
	if err := r.db.WithContext(ctx).
		Where("category IN ?", categories).
		Order("sample_cost_per_unit asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
