package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Menu mutations arrive either as JSON or as multipart form-data with an
// optional image file. The field set binds the same way for both.
type MenuItemRequest struct {
	Name        string          `json:"name" form:"name" binding:"required"`
	Description string          `json:"description" form:"description"`
	Price       float64         `json:"price" form:"price" binding:"required,gt=0"`
	Category    models.Category `json:"category" form:"category" binding:"omitempty,oneof='appetizer' 'main course' 'dessert' 'beverage'"`
	Image       string          `json:"image" form:"image_url"`
}

type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" form:"name"`
	Description *string          `json:"description" form:"description"`
	Price       *float64         `json:"price" form:"price" binding:"omitempty,gt=0"`
	Category    *models.Category `json:"category" form:"category" binding:"omitempty,oneof='appetizer' 'main course' 'dessert' 'beverage'"`
	IsAvailable *bool            `json:"isAvailable" form:"isAvailable"`
	Image       *string          `json:"image" form:"image_url"`
}

// ListMenuItems returns the catalog (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Order("name asc").Find(&items)

	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single catalog item (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a new catalog item — admin only. Accepts JSON or
// multipart form-data; an attached image file is optional either way.
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: true,
	}

	if uri, err := saveUploadedImage(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	} else if uri != "" {
		item.Image = uri
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem applies a partial update to a catalog item — admin only.
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	if uri, err := saveUploadedImage(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	} else if uri != "" {
		item.Image = uri
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a catalog item — admin only. Items referenced by
// historical orders may be deleted; order reads fall back to "Unknown Item".
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

type DeleteMultipleRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// DeleteMultipleMenuItems removes a batch of catalog items — admin only.
func DeleteMultipleMenuItems(c *gin.Context) {
	var req DeleteMultipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Delete(&models.MenuItem{}, req.IDs)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Menu items deleted successfully",
		"deleted": result.RowsAffected,
	})
}

// saveUploadedImage stores an attached image under the upload dir with a
// fresh uuid name and returns its public URI. Returns "" when the request
// carries no image file.
func saveUploadedImage(c *gin.Context) (string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return "", nil
	}
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached; the item fields alone are fine.
		return "", nil
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
