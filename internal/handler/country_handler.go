package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orders/internal/model"
	"orders/internal/service"
)

// CountryHandler handles country CRUD endpoints.
type CountryHandler struct {
	svc service.CountryService
}

// NewCountryHandler creates a new country handler.
func NewCountryHandler(svc service.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

// CountryRequest represents a country create/update payload.
type CountryRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// List pages countries ordered by name.
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.svc.List(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, countries)
}

// TotalPages returns the page count for the current filter.
func (h *CountryHandler) TotalPages(c echo.Context) error {
	pages, err := h.svc.TotalPages(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pages)
}

// Get returns a country by id.
func (h *CountryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	country, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, country)
}

// Create stores a new country.
func (h *CountryHandler) Create(c echo.Context) error {
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	country, err := h.svc.Create(c.Request().Context(), &model.Country{Name: req.Name})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, country)
}

// Update replaces a country's name.
func (h *CountryHandler) Update(c echo.Context) error {
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	country, err := h.svc.Update(c.Request().Context(), &model.Country{ID: req.ID, Name: req.Name})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, country)
}

// Delete removes a country.
func (h *CountryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
