package models

import "time"

// Category buckets for the menu. Stored as plain strings; valid values are
// enforced at the request boundary.
type Category string

const (
	CategoryAppetizer  Category = "appetizer"
	CategoryMainCourse Category = "main course"
	CategoryDessert    Category = "dessert"
	CategoryBeverage   Category = "beverage"
)

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    Category  `json:"category"`
	IsAvailable bool      `json:"isAvailable" gorm:"default:true"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
