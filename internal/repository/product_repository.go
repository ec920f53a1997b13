package repository

import (
	"context"

	"gorm.io/gorm"

	"orders/internal/model"
	"orders/internal/pagination"
)

// ProductRepository defines product persistence operations, including the
// image sub-resource and the wholesale category replacement used on update.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	UpdateWithCategories(ctx context.Context, product *model.Product, categoryIDs []uint) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, p pagination.Pagination) ([]model.Product, error)
	Count(ctx context.Context, filter string) (int64, error)
	AddImages(ctx context.Context, productID uint, images []model.ProductImage) error
	RemoveLastImage(ctx context.Context, productID uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create persists the product with its images and category joins atomically.
// Join rows carry only CategoryID; the Category association itself is never
// written from here.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit("ProductCategories.Category").Create(product).Error
}

// UpdateWithCategories replaces the scalar fields and wholly replaces the
// category join set in one transaction. Images are untouched.
func (r *productRepository) UpdateWithCategories(ctx context.Context, product *model.Product, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
		}
		if err := tx.Model(&model.Product{}).Where("id = ?", product.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductCategory{}).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			join := model.ProductCategory{ProductID: product.ID, CategoryID: categoryID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the product together with its images and category joins.
// A foreign key held by order lines aborts the whole transaction, leaving
// the product and its children unchanged.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.id ASC")
		}).
		Preload("ProductCategories.Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, p pagination.Pagination) ([]model.Product, error) {
	var products []model.Product
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.id ASC")
		}).
		Preload("ProductCategories")
	q = filterByName(q, p.Filter)
	err := q.Order("name ASC").Offset(p.Offset()).Limit(p.Limit()).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Product{})
	q = filterByName(q, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddImages appends image rows in the given order.
func (r *productRepository) AddImages(ctx context.Context, productID uint, images []model.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ProductID = productID
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

// RemoveLastImage deletes the most recently appended image row.
func (r *productRepository) RemoveLastImage(ctx context.Context, productID uint) error {
	var image model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id DESC").
		First(&image).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&image).Error
}
