package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"orders/internal/auth"
	"orders/internal/config"
	"orders/internal/handler"
	"orders/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	accountHandler *handler.AccountHandler,
	categoryHandler *handler.CategoryHandler,
	countryHandler *handler.CountryHandler,
	productHandler *handler.ProductHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Uploaded images are served straight from disk.
	e.Static("/images", cfg.StorageRoot+"/images")

	api := e.Group("/api")

	bearerGate := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	})

	// Accounts: public flows
	accounts := api.Group("/accounts")
	accounts.POST("/CreateUser", accountHandler.CreateUser)
	accounts.POST("/Login", accountHandler.Login)
	accounts.GET("/ConfirmEmail", accountHandler.ConfirmEmail)
	accounts.POST("/ResendToken", accountHandler.ResendToken)
	accounts.POST("/RecoverPassword", accountHandler.RecoverPassword)
	accounts.POST("/ResetPassword", accountHandler.ResetPassword)

	// Accounts: self-service behind the bearer gate
	accounts.GET("", accountHandler.Get, bearerGate)
	accounts.PUT("", accountHandler.Update, bearerGate)
	accounts.POST("/changePassword", accountHandler.ChangePassword, bearerGate)

	// Accounts: administration
	accounts.GET("/all", accountHandler.ListUsers, bearerGate, adminOnly)
	accounts.GET("/totalPages", accountHandler.TotalPages, bearerGate, adminOnly)

	registerCatalog(api, "/categories", bearerGate, catalogRoutes{
		list:       categoryHandler.List,
		totalPages: categoryHandler.TotalPages,
		get:        categoryHandler.Get,
		create:     categoryHandler.Create,
		update:     categoryHandler.Update,
		delete:     categoryHandler.Delete,
	})
	registerCatalog(api, "/countries", bearerGate, catalogRoutes{
		list:       countryHandler.List,
		totalPages: countryHandler.TotalPages,
		get:        countryHandler.Get,
		create:     countryHandler.Create,
		update:     countryHandler.Update,
		delete:     countryHandler.Delete,
	})
	registerCatalog(api, "/products", bearerGate, catalogRoutes{
		list:       productHandler.List,
		totalPages: productHandler.TotalPages,
		get:        productHandler.Get,
		create:     productHandler.Create,
		update:     productHandler.Update,
		delete:     productHandler.Delete,
	})

	// Product image sub-resource
	api.POST("/products/addImages", productHandler.AddImages, bearerGate, adminOnly)
	api.POST("/products/removeLastImage", productHandler.RemoveLastImage, bearerGate, adminOnly)
}

type catalogRoutes struct {
	list       echo.HandlerFunc
	totalPages echo.HandlerFunc
	get        echo.HandlerFunc
	create     echo.HandlerFunc
	update     echo.HandlerFunc
	delete     echo.HandlerFunc
}

// registerCatalog wires the shared CRUD shape: reads are public, mutations
// require an Admin bearer token.
func registerCatalog(api *echo.Group, prefix string, gate echo.MiddlewareFunc, r catalogRoutes) {
	g := api.Group(prefix)
	g.GET("", r.list)
	g.GET("/totalPages", r.totalPages)
	g.GET("/:id", r.get)
	g.POST("", r.create, gate, adminOnly)
	g.PUT("", r.update, gate, adminOnly)
	g.DELETE("/:id", r.delete, gate, adminOnly)
}

// adminOnly requires the Admin role claim on an already-verified token.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Role != string(model.UserTypeAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
