package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"orders/internal/model"
	"orders/internal/pagination"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Category, error)
	List(ctx context.Context, p pagination.Pagination) ([]model.Category, error)
	Count(ctx context.Context, filter string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByIDs returns only the categories that exist; unknown ids are simply absent.
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Category, error) {
	var categories []model.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) List(ctx context.Context, p pagination.Pagination) ([]model.Category, error) {
	var categories []model.Category
	q := r.db.WithContext(ctx).Model(&model.Category{})
	q = filterByName(q, p.Filter)
	err := q.Order("name ASC").Offset(p.Offset()).Limit(p.Limit()).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Count(ctx context.Context, filter string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Category{})
	q = filterByName(q, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// filterByName applies the case-insensitive substring filter shared by all
// name-keyed listings.
func filterByName(q *gorm.DB, filter string) *gorm.DB {
	if strings.TrimSpace(filter) == "" {
		return q
	}
	return q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter)+"%")
}
