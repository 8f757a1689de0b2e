package handlers

import (
	"net/http"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/middleware"
	"github.com/harshrathod2434/Madras-Meals/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ListAdmins returns all admin accounts — admin only
func ListAdmins(c *gin.Context) {
	var admins []models.User
	config.DB.Where("role = ?", models.RoleAdmin).Order("created_at asc").Find(&admins)
	c.JSON(http.StatusOK, gin.H{"count": len(admins), "admins": admins})
}

// CreateAdmin creates a new account with the admin role — admin only.
// The role is fixed here the same way Register fixes customer.
func CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created successfully", "admin": userView(&admin)})
}

// DeleteAdmin removes an admin account — admin only. Self-deletion is always
// rejected, no matter how many other admins exist.
func DeleteAdmin(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	adminID := c.Param("id")

	var admin models.User
	if err := config.DB.Where("role = ?", models.RoleAdmin).First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	if admin.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	if err := config.DB.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
