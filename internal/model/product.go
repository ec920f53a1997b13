package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// NoImagePlaceholder is the sentinel path returned when a product has no images.
const NoImagePlaceholder = "~/images/products/noimage.png"

// Product is a catalog item with owned images and category links.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string          `json:"description" gorm:"size:500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(18,2);not null"`
	Stock       float64         `json:"stock" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations; only ever loaded together with the product.
	ProductCategories []ProductCategory `json:"productCategories,omitempty" gorm:"foreignKey:ProductID"`
	ProductImages     []ProductImage    `json:"productImages,omitempty" gorm:"foreignKey:ProductID"`
}

// MainImage returns the first image path or the placeholder sentinel.
func (p Product) MainImage() string {
	if len(p.ProductImages) == 0 {
		return NoImagePlaceholder
	}
	return p.ProductImages[0].Image
}

// MarshalJSON adds the derived read-only attributes to the serialized product.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		ProductCategoriesNumber int    `json:"productCategoriesNumber"`
		ProductImagesNumber     int    `json:"productImagesNumber"`
		MainImage               string `json:"mainImage"`
	}{
		alias:                   alias(p),
		ProductCategoriesNumber: len(p.ProductCategories),
		ProductImagesNumber:     len(p.ProductImages),
		MainImage:               p.MainImage(),
	})
}

// ProductImage belongs to exactly one product and stores a relative path.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"productId" gorm:"not null;index"`
	Image     string `json:"image" gorm:"size:255;not null"`
}

// ProductCategory is the join row between products and categories.
type ProductCategory struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	ProductID  uint     `json:"productId" gorm:"not null;uniqueIndex:idx_product_category"`
	CategoryID uint     `json:"categoryId" gorm:"not null;uniqueIndex:idx_product_category"`
	Category   Category `json:"category" gorm:"foreignKey:CategoryID"`
}
