package handlers

import (
	"net/http"
	"strconv"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/middleware"
	"github.com/harshrathod2434/Madras-Meals/models"
	"github.com/harshrathod2434/Madras-Meals/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderLineRequest struct {
	MenuItem uint `json:"menuItem" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items" binding:"required,min=1"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PhoneNumber     string             `json:"phoneNumber"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type UpdateItemsRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1"`
}

// orderView renders an order for responses. Line names resolve through the
// live catalog and fall back to "Unknown Item" for deleted entries; amounts
// always come from the snapshots taken at creation.
func orderView(o *models.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, gin.H{
			"id":           item.ID,
			"menu_item_id": item.MenuItemID,
			"name":         item.DisplayName(),
			"price":        item.Price,
			"quantity":     item.Quantity,
		})
	}
	return gin.H{
		"id":              o.ID,
		"user_id":         o.UserID,
		"status":          o.Status,
		"totalAmount":     o.TotalAmount,
		"deliveryAddress": o.DeliveryAddress,
		"phoneNumber":     o.PhoneNumber,
		"items":           items,
		"created_at":      o.CreatedAt,
	}
}

func orderViews(orders []models.Order) []gin.H {
	views := make([]gin.H, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}
	return views
}

// resolveOrderLines looks up every referenced catalog item and builds order
// lines with the current price snapshotted in. Any unresolvable id fails the
// whole set.
func resolveOrderLines(tx *gorm.DB, lines []OrderLineRequest) ([]models.OrderItem, float64, string, bool) {
	var items []models.OrderItem
	var total float64
	for _, line := range lines {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, line.MenuItem).Error; err != nil {
			return nil, 0, strconv.FormatUint(uint64(line.MenuItem), 10), false
		}
		// Availability is informational only; unavailable items still order.
		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
		total += menuItem.Price * float64(line.Quantity)
	}
	return items, total, "", true
}

// CreateOrder converts the submitted cart lines into a pending order. The
// total is always computed server-side from catalog prices at this moment;
// creation is all-or-nothing.
func CreateOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delivery details come inline or fall back to the profile.
	address := req.DeliveryAddress
	if address == "" {
		address = user.DeliveryAddress
	}
	phone := req.PhoneNumber
	if phone == "" {
		phone = user.PhoneNumber
	}
	if address == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address and phone number are required"})
		return
	}

	orderItems, total, missingID, ok := resolveOrderLines(config.DB, req.Items)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found: " + missingID})
		return
	}

	order := models.Order{
		UserID:          user.ID,
		Status:          models.StatusPending,
		TotalAmount:     total,
		DeliveryAddress: address,
		PhoneNumber:     phone,
		Items:           orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": orderView(&order)})
}

// GetMyOrders returns the caller's own orders, newest first. Ownership is
// bound from the token identity, never from a client-supplied filter.
func GetMyOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orderViews(orders)})
}

// GetOrder returns a single order. Customers may only read their own; admins
// may read any.
func GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != user.ID && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": orderView(&order)})
}

// AdminGetAllOrders returns every order with a status summary — admin only.
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.MenuItem").Preload("User")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orderViews(orders),
	})
}

// UpdateOrderStatus moves an order to a new status — admin only. The target
// must be a known status; whether the move must also follow the adjacency
// graph depends on the configured policy.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: " + string(req.Status)})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, config.StatusPolicy()); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         err.Error(),
			"current_state": order.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": orderView(&order)})
}

// UpdateOrderItems replaces an order's lines — admin only, and only while the
// order is still pending. Prices are re-snapshotted from the current catalog
// and the total recomputed.
func UpdateOrderItems(c *gin.Context) {
	var req UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.Status != models.StatusPending {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Order items can only be changed while pending",
			"current_state": order.Status,
		})
		return
	}

	var missingID string
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		items, total, missing, ok := resolveOrderLines(tx, req.Items)
		if !ok {
			missingID = missing
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("total_amount", total).Error
	})
	if err != nil {
		if missingID != "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found: " + missingID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order items"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order items updated", "order": orderView(&order)})
}

// CancelOrder moves an order to cancelled — admin only. Terminal orders stay
// as they are.
func CancelOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.Status.IsTerminal() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"current_state": order.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	transitions := make([]gin.H, 0)
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   transitions,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Order Lifecycle State Machine",
	})
}
