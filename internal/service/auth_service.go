package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orders/internal/auth"
	apperrors "orders/internal/errors"
	"orders/internal/mail"
	"orders/internal/model"
	"orders/internal/repository"
	"orders/internal/storage"
)

const bcryptCost = 10

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("a user with this email is already registered")

// ErrWrongCurrentPassword is returned when a password change supplies a bad
// current password.
var ErrWrongCurrentPassword = errors.New("the current password is incorrect")

// RegisterInput carries the registration payload, photo as base64 or empty.
type RegisterInput struct {
	Email       string
	Password    string
	Document    string
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
	CityID      int
	Photo       string
	UserType    model.UserType
}

// TokenResponse is the issued bearer token with its expiry.
type TokenResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// AuthService handles registration, login and the token-driven account flows.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*TokenResponse, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	ConfirmEmail(ctx context.Context, userID uint, token string) error
	ResendToken(ctx context.Context, email string) error
	RecoverPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	photos     *storage.PhotoStore
	mailer     mail.Mailer
	webURL     string
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	photos *storage.PhotoStore,
	mailer mail.Mailer,
	webURL string,
) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		photos:     photos,
		mailer:     mailer,
		webURL:     webURL,
	}
}

// Register creates a user with a hashed password and an optional photo and
// sends the confirmation email. The user row is kept even when the mail send
// fails; the failure surfaces to the caller.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*TokenResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        in.Email,
		PasswordHash: string(hashed),
		Document:     in.Document,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Address:      in.Address,
		PhoneNumber:  in.PhoneNumber,
		CityID:       in.CityID,
		Photo:        s.photos.Save(in.Photo, storage.AreaUsers).StoredPath(),
		UserType:     in.UserType,
	}
	if user.UserType == "" {
		user.UserType = model.UserTypeUser
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.sendConfirmation(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login authenticates a user and returns a signed token whose claims snapshot
// the stored profile. Lockout and unconfirmed accounts produce distinct errors.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if failures, _ := s.tokenStore.LoginFailures(ctx, email); failures >= auth.MaxLoginFailures {
		return nil, apperrors.ErrLockedOut
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		failures, _ := s.tokenStore.RegisterLoginFailure(ctx, email)
		if failures >= auth.MaxLoginFailures {
			return nil, apperrors.ErrLockedOut
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.EmailConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	_ = s.tokenStore.ClearLoginFailures(ctx, email)
	return s.issueToken(user)
}

// ConfirmEmail consumes a single-use confirmation token and marks the account
// verified.
func (s *authService) ConfirmEmail(ctx context.Context, userID uint, token string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return storeError(err)
	}

	ok, err := s.tokenStore.ConsumeConfirmationToken(ctx, userID, token)
	if err != nil {
		return fmt.Errorf("consume confirmation token: %w", err)
	}
	if !ok {
		return apperrors.ErrInvalidToken
	}

	user.EmailConfirmed = true
	return s.users.Update(ctx, user)
}

// ResendToken re-issues the confirmation token and email. Success depends only
// on the mail-send outcome, regardless of any previously issued token.
func (s *authService) ResendToken(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return storeError(err)
	}
	return s.sendConfirmation(ctx, user)
}

// RecoverPassword issues a reset token and mails the reset link.
func (s *authService) RecoverPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return storeError(err)
	}

	token, err := s.tokenStore.IssueResetToken(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	link := fmt.Sprintf("%s/api/accounts/ResetPassword?email=%s&token=%s", s.webURL, user.Email, token)
	body := fmt.Sprintf(
		"<h1>Orders - Password Recovery</h1><p>To set a new password, click the link below:</p><b><a href=%q>Reset Password</a></b>",
		link)
	return s.mailer.Send(user.FullName(), user.Email, "Orders - Password Recovery", body)
}

// ResetPassword consumes a reset token and stores the new password.
func (s *authService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return storeError(err)
	}

	ok, err := s.tokenStore.ConsumeResetToken(ctx, user.ID, token)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if !ok {
		return apperrors.ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	return s.users.Update(ctx, user)
}

// ChangePassword verifies the current password before storing a new one.
func (s *authService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return storeError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	return s.users.Update(ctx, user)
}

func (s *authService) issueToken(user *model.User) (*TokenResponse, error) {
	token, expiration, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &TokenResponse{Token: token, Expiration: expiration}, nil
}

func (s *authService) sendConfirmation(ctx context.Context, user *model.User) error {
	token, err := s.tokenStore.IssueConfirmationToken(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("issue confirmation token: %w", err)
	}

	link := fmt.Sprintf("%s/api/accounts/ConfirmEmail?userId=%d&token=%s", s.webURL, user.ID, token)
	body := fmt.Sprintf(
		"<h1>Orders - Account Confirmation</h1><p>To finish registering, click the link below:</p><b><a href=%q>Confirm Email</a></b>",
		link)
	return s.mailer.Send(user.FullName(), user.Email, "Orders - Account Confirmation", body)
}
