package repository

import (
	"context"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories named in the given locale, ordered by that name.
func (r *CategoryRepository) List(ctx context.Context, loc domain.Locale) ([]domain.CategoryView, error) {
	name := loc.Column("name")

	categories := make([]domain.CategoryView, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Select("id, " + name + " AS name, icon").
		Order(name + " ASC").
		Order("id ASC").
		Scan(&categories).Error

	return categories, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}
