package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orders/internal/model"
	"orders/internal/service"
)

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// CategoryRequest represents a category create/update payload.
type CategoryRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// List pages categories ordered by name.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.svc.List(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// TotalPages returns the page count for the current filter.
func (h *CategoryHandler) TotalPages(c echo.Context) error {
	pages, err := h.svc.TotalPages(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pages)
}

// Get returns a category by id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Create stores a new category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.svc.Create(c.Request().Context(), &model.Category{Name: req.Name})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Update replaces a category's name.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.svc.Update(c.Request().Context(), &model.Category{ID: req.ID, Name: req.Name})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category unless dependent rows reference it.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
