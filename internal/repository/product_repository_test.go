package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orders/internal/model"
	"orders/internal/pagination"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Country{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductCategory{},
		&model.Order{},
		&model.OrderDetail{},
	))
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, names ...string) []model.Category {
	t.Helper()
	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		c := model.Category{Name: name}
		require.NoError(t, db.Create(&c).Error)
		categories = append(categories, c)
	}
	return categories
}

func newProduct(name string, price string, categoryIDs ...uint) *model.Product {
	p := &model.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: 5,
	}
	for _, id := range categoryIDs {
		p.ProductCategories = append(p.ProductCategories, model.ProductCategory{CategoryID: id})
	}
	return p
}

func TestProductRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	categories := seedCategories(t, db, "Tools", "Garden")

	product := newProduct("Widget", "9.99", categories[0].ID, categories[1].ID)
	product.ProductImages = []model.ProductImage{
		{Image: "~/images/products/a.jpg"},
		{Image: "~/images/products/b.jpg"},
	}
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("9.99")))
	require.Len(t, found.ProductImages, 2)
	assert.Equal(t, "~/images/products/a.jpg", found.ProductImages[0].Image)
	require.Len(t, found.ProductCategories, 2)
	assert.Equal(t, "Tools", found.ProductCategories[0].Category.Name)
}

func TestProductRepository_Create_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProduct("Widget", "9.99")))
	err := repo.Create(ctx, newProduct("Widget", "4.50"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProductRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Zebra Mug", "Apple Slicer", "Apple Corer", "Broom"} {
		require.NoError(t, repo.Create(ctx, newProduct(name, "1.00")))
	}

	t.Run("orders by name", func(t *testing.T) {
		products, err := repo.List(ctx, pagination.Pagination{Page: 1, RecordsNumber: 10})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "Zebra Mug", products[3].Name)
	})

	t.Run("filter is case insensitive", func(t *testing.T) {
		products, err := repo.List(ctx, pagination.Pagination{Page: 1, RecordsNumber: 10, Filter: "APPLE"})
		require.NoError(t, err)
		assert.Len(t, products, 2)

		count, err := repo.Count(ctx, "APPLE")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("second page", func(t *testing.T) {
		products, err := repo.List(ctx, pagination.Pagination{Page: 2, RecordsNumber: 3})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Zebra Mug", products[0].Name)
	})
}

func TestProductRepository_UpdateWithCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	categories := seedCategories(t, db, "Tools", "Garden", "Kitchen")

	product := newProduct("Widget", "9.99", categories[0].ID, categories[1].ID)
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "Widget Pro"
	product.Price = decimal.RequireFromString("12.50")
	require.NoError(t, repo.UpdateWithCategories(ctx, product, []uint{categories[2].ID}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("12.50")))
	// The previous category set is gone, not merged.
	require.Len(t, found.ProductCategories, 1)
	assert.Equal(t, categories[2].ID, found.ProductCategories[0].CategoryID)
}

func TestProductRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	categories := seedCategories(t, db, "Tools")

	product := newProduct("Widget", "9.99", categories[0].ID)
	product.ProductImages = []model.ProductImage{{Image: "~/images/products/a.jpg"}}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joins, images int64
	require.NoError(t, db.Model(&model.ProductCategory{}).Where("product_id = ?", product.ID).Count(&joins).Error)
	require.NoError(t, db.Model(&model.ProductImage{}).Where("product_id = ?", product.ID).Count(&images).Error)
	assert.Zero(t, joins)
	assert.Zero(t, images)
}

func TestProductRepository_Delete_WithOrderLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	categories := seedCategories(t, db, "Tools")

	product := newProduct("Widget", "9.99", categories[0].ID)
	product.ProductImages = []model.ProductImage{{Image: "~/images/products/a.jpg"}}
	require.NoError(t, repo.Create(ctx, product))

	order := model.Order{UserID: 1, Lines: []model.OrderDetail{{ProductID: product.ID, Quantity: 2}}}
	require.NoError(t, db.Omit("Lines.Product").Create(&order).Error)

	err := repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	// The rollback keeps every child row in place.
	found, findErr := repo.FindByID(ctx, product.ID)
	require.NoError(t, findErr)
	assert.Len(t, found.ProductImages, 1)
	assert.Len(t, found.ProductCategories, 1)
}

func TestProductRepository_Images(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := newProduct("Widget", "9.99")
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.AddImages(ctx, product.ID, []model.ProductImage{
		{Image: "~/images/products/a.jpg"},
		{Image: "~/images/products/b.jpg"},
	}))

	require.NoError(t, repo.RemoveLastImage(ctx, product.ID))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, found.ProductImages, 1)
	assert.Equal(t, "~/images/products/a.jpg", found.ProductImages[0].Image)

	require.NoError(t, repo.RemoveLastImage(ctx, product.ID))
	err = repo.RemoveLastImage(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
