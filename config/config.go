package config

import (
	"log"
	"os"

	"github.com/harshrathod2434/Madras-Meals/models"
	"github.com/harshrathod2434/Madras-Meals/statemachine"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "madras_meals_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UploadDir is where menu item images are stored.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "uploads")
}

// StatusPolicy selects how order status updates are validated. The default
// mirrors the admin console's historical behavior: any known status is
// accepted. Set ORDER_STATUS_POLICY=strict to enforce the adjacency graph.
func StatusPolicy() statemachine.Policy {
	if getEnv("ORDER_STATUS_POLICY", "permissive") == "strict" {
		return statemachine.PolicyStrict
	}
	return statemachine.PolicyPermissive
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "madras_meals.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs the schema migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
