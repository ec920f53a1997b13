package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orders/internal/model"
	"orders/internal/service"
)

// AccountHandler handles registration, login, profile and password endpoints.
type AccountHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(authService service.AuthService, userService service.UserService) *AccountHandler {
	return &AccountHandler{authService: authService, userService: userService}
}

// CreateUserRequest represents a registration request. Photo is base64 or absent.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Document    string `json:"document" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	CityID      int    `json:"cityId"`
	Photo       string `json:"photo"`
	UserType    string `json:"userType" validate:"omitempty,oneof=Admin User"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a self-service profile update.
type UpdateProfileRequest struct {
	Document    string `json:"document" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	CityID      int    `json:"cityId"`
	Photo       string `json:"photo"`
}

// ChangePasswordRequest carries the current and new password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// EmailRequest addresses flows keyed only by email.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries a reset token and the new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// CreateUser registers a user and returns a bearer token.
func (h *AccountHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Document:    req.Document,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		CityID:      req.CityID,
		Photo:       req.Photo,
		UserType:    model.UserType(req.UserType),
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, token)
}

// Login authenticates and returns a bearer token with its expiry.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, token)
}

// Get returns the authenticated user's own profile.
func (h *AccountHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	user, err := h.userService.GetByEmail(c.Request().Context(), claims.Subject)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update replaces the authenticated user's profile fields.
func (h *AccountHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err = h.userService.UpdateProfile(c.Request().Context(), claims.Subject, service.ProfileInput{
		Document:    req.Document,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		CityID:      req.CityID,
		Photo:       req.Photo,
	})
	if err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword verifies the current password and stores a new one.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claims.Subject, req.CurrentPassword, req.NewPassword); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmEmail consumes the confirmation token from the emailed link.
func (h *AccountHandler) ConfirmEmail(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
	}
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing token")
	}

	if err := h.authService.ConfirmEmail(c.Request().Context(), uint(userID), token); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResendToken re-sends the confirmation email. Success depends only on the
// mail-send outcome.
func (h *AccountHandler) ResendToken(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResendToken(c.Request().Context(), req.Email); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RecoverPassword mails a password reset link.
func (h *AccountHandler) RecoverPassword(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RecoverPassword(c.Request().Context(), req.Email); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword consumes a reset token and stores the new password.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.Token, req.NewPassword); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers pages all users, filtered on full name.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// TotalPages returns the page count for the user listing.
func (h *AccountHandler) TotalPages(c echo.Context) error {
	pages, err := h.userService.TotalPages(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pages)
}
