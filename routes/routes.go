package routes

import (
	"github.com/harshrathod2434/Madras-Meals/handlers"
	"github.com/harshrathod2434/Madras-Meals/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing needs no auth
		public.GET("/menu", handlers.ListMenuItems)
		public.GET("/menu/:id", handlers.GetMenuItem)

		// Lifecycle info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.GetMe)
		auth.PUT("/auth/change-password", handlers.ChangePassword)
		auth.PUT("/profile", handlers.UpdateProfile)

		// Order placement and history for the logged-in customer
		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		// Menu management
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)
		admin.POST("/menu/delete-multiple", handlers.DeleteMultipleMenuItems)

		// Order workflow
		admin.GET("/orders/admin/all", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.PUT("/orders/:id/items", handlers.UpdateOrderItems)
		admin.PUT("/orders/:id/cancel", handlers.CancelOrder)

		// Customer management
		admin.GET("/customers", handlers.GetAllCustomers)
		admin.GET("/customers/stats", handlers.GetCustomerStats)
		admin.GET("/customers/:customerId/orders", handlers.GetCustomerOrders)

		// Admin management
		admin.GET("/admin", handlers.ListAdmins)
		admin.POST("/admin", handlers.CreateAdmin)
		admin.DELETE("/admin/:id", handlers.DeleteAdmin)
	}
}
