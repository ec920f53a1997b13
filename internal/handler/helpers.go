package handler

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"orders/internal/auth"
	"orders/internal/errors"
	"orders/internal/pagination"
)

// queryPagination reads page/recordsnumber/filter query parameters.
func queryPagination(c echo.Context) pagination.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	records, _ := strconv.Atoi(c.QueryParam("recordsnumber"))
	p := pagination.Pagination{
		Page:          page,
		RecordsNumber: records,
		Filter:        c.QueryParam("filter"),
	}
	return p.Normalize()
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// currentClaims extracts the verified bearer claims set by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// domainError translates a service failure into the HTTP status contract.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
