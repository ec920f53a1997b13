package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orders/internal/model"
	"orders/internal/repository"
	"orders/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newCategoryTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Category{}))

	h := NewCategoryHandler(service.NewCategoryService(repository.NewCategoryRepository(db), nil))

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.GET("/api/categories", h.List)
	e.GET("/api/categories/totalPages", h.TotalPages)
	e.GET("/api/categories/:id", h.Get)
	e.POST("/api/categories", h.Create)
	e.PUT("/api/categories", h.Update)
	e.DELETE("/api/categories/:id", h.Delete)
	return e, db
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCategoryHandler_Create(t *testing.T) {
	e, _ := newCategoryTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":"Tools"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Tools", created.Name)
}

func TestCategoryHandler_Create_Invalid(t *testing.T) {
	e, _ := newCategoryTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/categories", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	e, _ := newCategoryTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":"Tools"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/categories", `{"name":"Tools"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "same name already exists")
}

func TestCategoryHandler_Get(t *testing.T) {
	e, db := newCategoryTestServer(t)
	category := model.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/api/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/categories/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/categories/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryHandler_Update(t *testing.T) {
	e, db := newCategoryTestServer(t)
	category := model.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	body := fmt.Sprintf(`{"id":%d,"name":"Hand Tools"}`, category.ID)
	rec := doJSON(e, http.MethodPut, "/api/categories", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hand Tools")

	rec = doJSON(e, http.MethodPut, "/api/categories", `{"id":999,"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_Delete(t *testing.T) {
	e, db := newCategoryTestServer(t)
	category := model.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	rec := doJSON(e, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_List(t *testing.T) {
	e, db := newCategoryTestServer(t)
	for _, name := range []string{"Garden", "Tools", "Toys"} {
		require.NoError(t, db.Create(&model.Category{Name: name}).Error)
	}

	rec := doJSON(e, http.MethodGet, "/api/categories?page=1&recordsnumber=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Garden", categories[0].Name)

	rec = doJSON(e, http.MethodGet, "/api/categories/totalPages?recordsnumber=2&filter=to", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", strings.TrimSpace(rec.Body.String()))
}
