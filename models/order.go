package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists every known status, in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null"`
	User            User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress" gorm:"not null"`
	PhoneNumber     string      `json:"phoneNumber" gorm:"not null"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"` // snapshot price at time of order
}

// DisplayName resolves the item name for rendering. The catalog row may have
// been deleted since the order was placed.
func (i *OrderItem) DisplayName() string {
	if i.MenuItem == nil || i.MenuItem.ID == 0 {
		return "Unknown Item"
	}
	return i.MenuItem.Name
}
