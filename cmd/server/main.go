package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"orders/internal/auth"
	"orders/internal/cache"
	"orders/internal/config"
	"orders/internal/db"
	"orders/internal/handler"
	"orders/internal/mail"
	"orders/internal/model"
	"orders/internal/repository"
	"orders/internal/router"
	"orders/internal/service"
	"orders/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Country{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductCategory{},
		&model.Order{},
		&model.OrderDetail{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	countryRepo := repository.NewCountryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth and infrastructure components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	photoStore := storage.NewPhotoStore(cfg.StorageRoot)
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, photoStore, mailer, cfg.WebURL)
	userService := service.NewUserService(userRepo, photoStore)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	countryService := service.NewCountryService(countryRepo, cacheClient)
	productService := service.NewProductService(productRepo, categoryRepo, photoStore)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(authService, userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	countryHandler := handler.NewCountryHandler(countryService)
	productHandler := handler.NewProductHandler(productService)

	// Register routes
	router.Register(
		e,
		cfg,
		accountHandler,
		categoryHandler,
		countryHandler,
		productHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
