package menu_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 5 << 20 // 5MB

// UploadMenuItemPhoto godoc
// @Summary Upload a menu item photo
// @Description Stores the photo on Cloudinary and saves its URL on the item
// @Tags Dashboard - Menu
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param photo formData file true "Image file"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 404 {object} models.ApiResponse
// @Failure 413 {object} models.ApiResponse
// @Router /menu-items/{id}/photo [post]
func UploadMenuItemPhoto(c *gin.Context) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	cloudinary := services.GetCloudinaryService()
	if cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Photo uploads are not configured"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.MenuItem
	err := config.DashboardGorm.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Menu item not found"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "photo file is required"))
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse(c, "Photo must be under 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read photo"))
		return
	}
	defer file.Close()

	// replace the previous photo if there is one
	if item.PhotoURL != nil {
		if err := cloudinary.DeleteMenuItemPhoto(ctx, *item.PhotoURL); err != nil {
			log.Printf("[menu.photo] WARN delete old photo err=%v", err)
		}
	}

	url, err := cloudinary.UploadMenuItemPhoto(ctx, file, restaurantID, item.ID)
	if err != nil {
		log.Printf("[menu.photo] ERROR upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload photo"))
		return
	}

	item.PhotoURL = &url
	item.UpdatedAt = time.Now().UTC()
	if err := config.DashboardGorm.WithContext(ctx).Save(&item).Error; err != nil {
		log.Printf("[menu.photo] ERROR save item err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save photo URL"))
		return
	}

	c.Set("auditResourceName", item.Name)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Photo uploaded", item))
}
