package handlers

import (
	"net/http"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/models"

	"github.com/gin-gonic/gin"
)

// GetAllCustomers returns all customer accounts — admin only
func GetAllCustomers(c *gin.Context) {
	var customers []models.User
	config.DB.Where("role = ?", models.RoleCustomer).Order("created_at asc").Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// GetCustomerOrders returns a specific customer's orders — admin only
func GetCustomerOrders(c *gin.Context) {
	var customer models.User
	if err := config.DB.Where("role = ?", models.RoleCustomer).First(&customer, c.Param("customerId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{
		"customer": gin.H{"id": customer.ID, "name": customer.Name, "email": customer.Email},
		"count":    len(orders),
		"orders":   orderViews(orders),
	})
}

// GetCustomerStats returns per-customer order counts and spend — admin only
func GetCustomerStats(c *gin.Context) {
	var customers []models.User
	config.DB.Where("role = ?", models.RoleCustomer).Find(&customers)

	var orders []models.Order
	config.DB.Find(&orders)

	type stat struct {
		orderCount int
		totalSpent float64
	}
	byCustomer := make(map[uint]*stat)
	for _, o := range orders {
		s, ok := byCustomer[o.UserID]
		if !ok {
			s = &stat{}
			byCustomer[o.UserID] = s
		}
		s.orderCount++
		if o.Status != models.StatusCancelled {
			s.totalSpent += o.TotalAmount
		}
	}

	stats := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		s := byCustomer[customer.ID]
		if s == nil {
			s = &stat{}
		}
		stats = append(stats, gin.H{
			"id":          customer.ID,
			"name":        customer.Name,
			"email":       customer.Email,
			"order_count": s.orderCount,
			"total_spent": s.totalSpent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(stats), "stats": stats})
}
