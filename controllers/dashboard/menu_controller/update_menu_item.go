package menu_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/cache/report_cache"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Partial update; only the provided fields change
// @Tags Dashboard - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 404 {object} models.ApiResponse
// @Router /menu-items/{id} [patch]
func UpdateMenuItem(c *gin.Context) {
	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid update data: "+err.Error()))
		return
	}

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

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

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.MacroCategory != nil {
		item.MacroCategory = *req.MacroCategory
	}
	if req.PriceCents != nil {
		item.PriceCents = *req.PriceCents
	}
	if req.CostCents != nil {
		item.CostCents = req.CostCents
	}
	if req.IsCoreMenu != nil {
		item.IsCoreMenu = *req.IsCoreMenu
	}
	if req.IsCurrentMenu != nil {
		item.IsCurrentMenu = *req.IsCurrentMenu
	}
	if req.IntroducedAt != nil {
		t, err := time.Parse("2006-01-02", *req.IntroducedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "introduced_at must be YYYY-MM-DD"))
			return
		}
		item.IntroducedAt = &t
	}
	applyCostPercent(&item)
	item.UpdatedAt = time.Now().UTC()

	if err := config.DashboardGorm.WithContext(ctx).Save(&item).Error; err != nil {
		log.Printf("[menu.update] ERROR save item err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update menu item"))
		return
	}

	report_cache.Invalidate(restaurantID)
	c.Set("auditResourceName", item.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item updated", item))
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Removes the item from the menu card; imported sales rows stay
// @Tags Dashboard - Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /menu-items/{id} [delete]
func DeleteMenuItem(c *gin.Context) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

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

	if err := config.DashboardGorm.WithContext(ctx).Delete(&item).Error; err != nil {
		log.Printf("[menu.delete] ERROR delete item err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete menu item"))
		return
	}

	report_cache.Invalidate(restaurantID)
	c.Set("auditResourceName", item.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item deleted", nil))
}
