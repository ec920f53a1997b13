package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"orders/internal/service"
)

// ProductHandler handles product CRUD and image sub-resource endpoints.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ProductRequest represents a product create/update payload. Images are
// base64 strings; unknown category ids are silently skipped.
type ProductRequest struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name" validate:"required,max=50"`
	Description        string          `json:"description" validate:"max=500"`
	Price              decimal.Decimal `json:"price" validate:"required"`
	Stock              float64         `json:"stock"`
	ProductCategoryIDs []uint          `json:"productCategoryIds"`
	ProductImages      []string        `json:"productImages"`
}

// ImageRequest addresses the image sub-resource of one product.
type ImageRequest struct {
	ProductID uint     `json:"productId" validate:"required"`
	Images    []string `json:"images"`
}

// ImageResponse returns the resulting image list after a mutation.
type ImageResponse struct {
	ProductID uint     `json:"productId"`
	Images    []string `json:"images"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		Stock:              r.Stock,
		ProductCategoryIDs: r.ProductCategoryIDs,
		ProductImages:      r.ProductImages,
	}
}

// List pages products with their images and category joins.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// TotalPages returns the page count for the current filter.
func (h *ProductHandler) TotalPages(c echo.Context) error {
	pages, err := h.svc.TotalPages(c.Request().Context(), queryPagination(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pages)
}

// Get returns a product with images and categories.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Create stores a product with its images and category links.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Update replaces scalar fields and the full category set; images are managed
// through the image endpoints.
func (h *ProductHandler) Update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.svc.Update(c.Request().Context(), req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product unless order lines reference it.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddImages appends images to a product and returns the resulting list.
func (h *ProductHandler) AddImages(c echo.Context) error {
	var req ImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	images, err := h.svc.AddImages(c.Request().Context(), req.ProductID, req.Images)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ImageResponse{ProductID: req.ProductID, Images: images})
}

// RemoveLastImage drops the product's most recent image.
func (h *ProductHandler) RemoveLastImage(c echo.Context) error {
	var req ImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	images, err := h.svc.RemoveLastImage(c.Request().Context(), req.ProductID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ImageResponse{ProductID: req.ProductID, Images: images})
}
