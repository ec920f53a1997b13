package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/cache"
	"orders/internal/model"
	"orders/internal/pagination"
	"orders/internal/repository"
)

const referenceCacheTTL = 5 * time.Minute

// CategoryService exposes CRUD over the category reference entity.
type CategoryService interface {
	List(ctx context.Context, p pagination.Pagination) ([]model.Category, error)
	TotalPages(ctx context.Context, p pagination.Pagination) (int, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache *cache.Client
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) cacheKey(id uint) string {
	return fmt.Sprintf("category:%d", id)
}

func (s *categoryService) List(ctx context.Context, p pagination.Pagination) ([]model.Category, error) {
	return s.repo.List(ctx, p)
}

func (s *categoryService) TotalPages(ctx context.Context, p pagination.Pagination) (int, error) {
	count, err := s.repo.Count(ctx, p.Filter)
	if err != nil {
		return 0, err
	}
	return p.TotalPages(count), nil
}

// Get retrieves a category by ID with caching.
func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	if payload, err := json.Marshal(category); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, referenceCacheTTL)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, storeError(err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if _, err := s.repo.FindByID(ctx, category.ID); err != nil {
		return nil, storeError(err)
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, storeError(err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(category.ID))
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
