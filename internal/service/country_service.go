package service

import (
	"context"
	"encoding/json"
	"fmt"

	"orders/internal/cache"
	"orders/internal/model"
	"orders/internal/pagination"
	"orders/internal/repository"
)

// CountryService exposes CRUD over the country lookup entity.
type CountryService interface {
	List(ctx context.Context, p pagination.Pagination) ([]model.Country, error)
	TotalPages(ctx context.Context, p pagination.Pagination) (int, error)
	Get(ctx context.Context, id uint) (*model.Country, error)
	Create(ctx context.Context, country *model.Country) (*model.Country, error)
	Update(ctx context.Context, country *model.Country) (*model.Country, error)
	Delete(ctx context.Context, id uint) error
}

type countryService struct {
	repo  repository.CountryRepository
	cache *cache.Client
}

// NewCountryService builds a CountryService with repository and cache.
func NewCountryService(repo repository.CountryRepository, cache *cache.Client) CountryService {
	return &countryService{repo: repo, cache: cache}
}

func (s *countryService) cacheKey(id uint) string {
	return fmt.Sprintf("country:%d", id)
}

func (s *countryService) List(ctx context.Context, p pagination.Pagination) ([]model.Country, error) {
	return s.repo.List(ctx, p)
}

func (s *countryService) TotalPages(ctx context.Context, p pagination.Pagination) (int, error) {
	count, err := s.repo.Count(ctx, p.Filter)
	if err != nil {
		return 0, err
	}
	return p.TotalPages(count), nil
}

func (s *countryService) Get(ctx context.Context, id uint) (*model.Country, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Country
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	if payload, err := json.Marshal(country); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, referenceCacheTTL)
	}
	return country, nil
}

func (s *countryService) Create(ctx context.Context, country *model.Country) (*model.Country, error) {
	if err := s.repo.Create(ctx, country); err != nil {
		return nil, storeError(err)
	}
	return country, nil
}

func (s *countryService) Update(ctx context.Context, country *model.Country) (*model.Country, error) {
	if _, err := s.repo.FindByID(ctx, country.ID); err != nil {
		return nil, storeError(err)
	}
	if err := s.repo.Update(ctx, country); err != nil {
		return nil, storeError(err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(country.ID))
	return country, nil
}

func (s *countryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
