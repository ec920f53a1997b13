package repository

import (
	"context"

	"gorm.io/gorm"

	"orders/internal/model"
	"orders/internal/pagination"
)

// CountryRepository defines country persistence operations.
type CountryRepository interface {
	Create(ctx context.Context, country *model.Country) error
	Update(ctx context.Context, country *model.Country) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Country, error)
	List(ctx context.Context, p pagination.Pagination) ([]model.Country, error)
	Count(ctx context.Context, filter string) (int64, error)
}

type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository builds a GORM-backed repository.
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *countryRepository) Update(ctx context.Context, country *model.Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

func (r *countryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Country{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *countryRepository) FindByID(ctx context.Context, id uint) (*model.Country, error) {
	var country model.Country
	if err := r.db.WithContext(ctx).First(&country, id).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) List(ctx context.Context, p pagination.Pagination) ([]model.Country, error) {
	var countries []model.Country
	q := r.db.WithContext(ctx).Model(&model.Country{})
	q = filterByName(q, p.Filter)
	err := q.Order("name ASC").Offset(p.Offset()).Limit(p.Limit()).Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Count(ctx context.Context, filter string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Country{})
	q = filterByName(q, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
