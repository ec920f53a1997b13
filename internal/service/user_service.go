package service

import (
	"context"

	"orders/internal/model"
	"orders/internal/pagination"
	"orders/internal/repository"
	"orders/internal/storage"
)

// ProfileInput carries a self-service profile update, photo as base64 or empty.
type ProfileInput struct {
	Document    string
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
	CityID      int
	Photo       string
}

// UserService exposes profile and user-listing operations.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, in ProfileInput) (*model.User, error)
	List(ctx context.Context, p pagination.Pagination) ([]model.User, error)
	TotalPages(ctx context.Context, p pagination.Pagination) (int, error)
}

type userService struct {
	users  repository.UserRepository
	photos *storage.PhotoStore
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, photos *storage.PhotoStore) UserService {
	return &userService{users: users, photos: photos}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

// UpdateProfile replaces profile fields. The stored photo changes only when a
// new photo was actually uploaded and differs from the current one.
func (s *userService) UpdateProfile(ctx context.Context, email string, in ProfileInput) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}

	user.Document = in.Document
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Address = in.Address
	user.PhoneNumber = in.PhoneNumber
	user.CityID = in.CityID

	if stored := s.photos.Save(in.Photo, storage.AreaUsers).StoredPath(); stored != "" && stored != user.Photo {
		user.Photo = stored
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, p pagination.Pagination) ([]model.User, error) {
	return s.users.List(ctx, p)
}

func (s *userService) TotalPages(ctx context.Context, p pagination.Pagination) (int, error) {
	count, err := s.users.Count(ctx, p.Filter)
	if err != nil {
		return 0, err
	}
	return p.TotalPages(count), nil
}
