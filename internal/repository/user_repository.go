package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"orders/internal/model"
	"orders/internal/pagination"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, p pagination.Pagination) ([]model.User, error)
	Count(ctx context.Context, filter string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List pages users ordered by first then last name, filtered on the full name.
func (r *userRepository) List(ctx context.Context, p pagination.Pagination) ([]model.User, error) {
	var users []model.User
	q := filterByFullName(r.db.WithContext(ctx).Model(&model.User{}), p.Filter)
	err := q.Order("first_name ASC, last_name ASC").
		Offset(p.Offset()).Limit(p.Limit()).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, filter string) (int64, error) {
	var count int64
	q := filterByFullName(r.db.WithContext(ctx).Model(&model.User{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func filterByFullName(q *gorm.DB, filter string) *gorm.DB {
	if strings.TrimSpace(filter) == "" {
		return q
	}
	return q.Where("LOWER(CONCAT(first_name, ' ', last_name)) LIKE ?", "%"+strings.ToLower(filter)+"%")
}
