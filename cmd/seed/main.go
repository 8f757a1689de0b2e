// Seeds the catalog with the standard Madras menu and makes sure a default
// admin account exists. Safe to re-run: existing rows are left alone.
package main

import (
	"log"
	"os"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var menuItems = []models.MenuItem{
	{Name: "Masala Dosa", Price: 120, Category: models.CategoryMainCourse, Description: "Crispy dosa stuffed with spicy mashed potatoes.", Image: "/uploads/masala-dosa.jpg"},
	{Name: "Plain Dosa", Price: 100, Category: models.CategoryMainCourse, Description: "Traditional South Indian rice crepe served with chutneys.", Image: "/uploads/plain-dosa.jpg"},
	{Name: "Idli", Price: 80, Category: models.CategoryAppetizer, Description: "Steamed rice cakes, light and fluffy, served with sambar and chutney.", Image: "/uploads/idli.jpg"},
	{Name: "Medu Vada", Price: 90, Category: models.CategoryAppetizer, Description: "Crispy fried lentil donuts, perfect with coconut chutney.", Image: "/uploads/medu-vada.jpg"},
	{Name: "Upma", Price: 85, Category: models.CategoryMainCourse, Description: "Savory semolina porridge with vegetables and mustard seeds.", Image: "/uploads/upma.jpg"},
	{Name: "Pongal", Price: 90, Category: models.CategoryMainCourse, Description: "Comforting rice and lentil dish, seasoned with pepper and ghee.", Image: "/uploads/pongal.jpg"},
	{Name: "Sambar", Price: 70, Category: models.CategoryAppetizer, Description: "Spicy and tangy lentil-based vegetable stew.", Image: "/uploads/sambar.jpg"},
	{Name: "Rasam Rice", Price: 60, Category: models.CategoryMainCourse, Description: "Hot and peppery tamarind soup served over rice.", Image: "/uploads/rasam-rice.jpg"},
	{Name: "Curd Rice", Price: 70, Category: models.CategoryMainCourse, Description: "Cool and refreshing yogurt rice with mustard tempering.", Image: "/uploads/curd-rice.jpg"},
	{Name: "Filter Coffee", Price: 40, Category: models.CategoryBeverage, Description: "Strong and aromatic South Indian filter coffee.", Image: "/uploads/filter-coffee.jpg"},
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	config.InitDB()

	seeded := 0
	for _, item := range menuItems {
		var existing models.MenuItem
		if err := config.DB.Where("name = ?", item.Name).First(&existing).Error; err == nil {
			continue
		}
		item.IsAvailable = true
		if err := config.DB.Create(&item).Error; err != nil {
			log.Fatal("Failed to seed menu item:", err)
		}
		seeded++
	}
	log.Printf("Seeded %d menu items (%d already present)", seeded, len(menuItems)-seeded)

	adminEmail := getEnv("ADMIN_EMAIL", "admin@madrasmeals.com")
	var admin models.User
	if err := config.DB.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		log.Println("Admin account already exists:", adminEmail)
		return
	}

	password := getEnv("ADMIN_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	admin = models.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account:", err)
	}
	log.Println("✅ Admin account created:", adminEmail)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
