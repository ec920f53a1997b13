package service

import (
	"context"

	"github.com/shopspring/decimal"

	"orders/internal/model"
	"orders/internal/pagination"
	"orders/internal/repository"
	"orders/internal/storage"
)

// ProductInput carries the product payload; images are base64 strings and
// category ids may reference unknown categories, which are silently skipped.
type ProductInput struct {
	ID                 uint
	Name               string
	Description        string
	Price              decimal.Decimal
	Stock              float64
	ProductCategoryIDs []uint
	ProductImages      []string
}

// ProductService exposes catalog operations for products.
type ProductService interface {
	List(ctx context.Context, p pagination.Pagination) ([]model.Product, error)
	TotalPages(ctx context.Context, p pagination.Pagination) (int, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, in ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
	AddImages(ctx context.Context, productID uint, images []string) ([]string, error)
	RemoveLastImage(ctx context.Context, productID uint) ([]string, error)
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	photos     *storage.PhotoStore
}

// NewProductService creates a new product service.
func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	photos *storage.PhotoStore,
) ProductService {
	return &productService{products: products, categories: categories, photos: photos}
}

func (s *productService) List(ctx context.Context, p pagination.Pagination) ([]model.Product, error) {
	return s.products.List(ctx, p)
}

func (s *productService) TotalPages(ctx context.Context, p pagination.Pagination) (int, error) {
	count, err := s.products.Count(ctx, p.Filter)
	if err != nil {
		return 0, err
	}
	return p.TotalPages(count), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return product, nil
}

// Create stores the product with its images and category joins in one
// transaction. Images that fail to decode or write are omitted, not reported;
// unknown category ids are skipped.
func (s *productService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}

	product.ProductImages = s.storeImages(in.ProductImages)

	validIDs, err := s.resolveCategoryIDs(ctx, in.ProductCategoryIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range validIDs {
		product.ProductCategories = append(product.ProductCategories, model.ProductCategory{CategoryID: id})
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, storeError(err)
	}
	return s.products.FindByID(ctx, product.ID)
}

// Update replaces scalar fields and wholly replaces the category set. Images
// are not touched here; they have their own endpoints.
func (s *productService) Update(ctx context.Context, in ProductInput) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, in.ID)
	if err != nil {
		return nil, storeError(err)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock

	validIDs, err := s.resolveCategoryIDs(ctx, in.ProductCategoryIDs)
	if err != nil {
		return nil, err
	}

	if err := s.products.UpdateWithCategories(ctx, product, validIDs); err != nil {
		return nil, storeError(err)
	}
	return s.products.FindByID(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

// AddImages appends decoded images in payload order and returns the full
// resulting image list.
func (s *productService) AddImages(ctx context.Context, productID uint, images []string) ([]string, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, storeError(err)
	}

	stored := s.storeImages(images)
	if err := s.products.AddImages(ctx, productID, stored); err != nil {
		return nil, storeError(err)
	}
	return s.imagePaths(ctx, productID)
}

// RemoveLastImage drops the last image; removing from an empty list succeeds.
func (s *productService) RemoveLastImage(ctx context.Context, productID uint) ([]string, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, storeError(err)
	}
	if len(product.ProductImages) == 0 {
		return []string{}, nil
	}

	if err := s.products.RemoveLastImage(ctx, productID); err != nil {
		return nil, storeError(err)
	}
	return s.imagePaths(ctx, productID)
}

func (s *productService) storeImages(encoded []string) []model.ProductImage {
	var images []model.ProductImage
	for _, payload := range encoded {
		if res := s.photos.Save(payload, storage.AreaProducts); res.Status == storage.Uploaded {
			images = append(images, model.ProductImage{Image: res.Path})
		}
	}
	return images
}

// resolveCategoryIDs keeps only ids present in the category table, preserving
// the supplied order.
func (s *productService) resolveCategoryIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(found))
	for _, c := range found {
		known[c.ID] = true
	}
	var valid []uint
	for _, id := range ids {
		if known[id] {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

func (s *productService) imagePaths(ctx context.Context, productID uint) ([]string, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, storeError(err)
	}
	paths := make([]string, 0, len(product.ProductImages))
	for _, img := range product.ProductImages {
		paths = append(paths, img.Image)
	}
	return paths, nil
}
