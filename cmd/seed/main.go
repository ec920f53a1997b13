package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orders/internal/config"
	"orders/internal/db"
	"orders/internal/model"
	"orders/internal/repository"
)

var seedCountries = []string{
	"Argentina", "Bolivia", "Brazil", "Chile", "Colombia",
	"Ecuador", "Paraguay", "Peru", "Uruguay", "Venezuela",
}

var seedCategories = []string{
	"Apparel", "Beauty", "Electronics", "Food", "Gaming",
	"Home", "Sports", "Toys",
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

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
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created := 0
	for _, name := range seedCountries {
		n, err := ensureNamed(gormDB, &model.Country{Name: name}, name)
		if err != nil {
			log.Fatalf("Failed to seed country %s: %v", name, err)
		}
		created += n
	}
	for _, name := range seedCategories {
		n, err := ensureNamed(gormDB, &model.Category{Name: name}, name)
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", name, err)
		}
		created += n
	}
	log.Printf("Reference data seeded (%d new rows)", created)

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// ensureNamed creates the row unless one with the same name already exists.
func ensureNamed(gormDB *gorm.DB, value interface{}, name string) (int, error) {
	res := gormDB.Where("name = ?", name).FirstOrCreate(value)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// seedAdmin creates a confirmed Admin account so a fresh install is usable.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	if existing, err := users.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin user %s already exists", email)
		return nil
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:          email,
		PasswordHash:   string(hashed),
		Document:       "0",
		FirstName:      "System",
		LastName:       "Administrator",
		Address:        "-",
		UserType:       model.UserTypeAdmin,
		EmailConfirmed: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user %s created", email)
	return nil
}
