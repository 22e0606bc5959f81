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
	"github.com/google/uuid"
)

// CreateMenuItem godoc
// @Summary Create a menu item
// @Description Adds an item to the restaurant's menu card
// @Tags Dashboard - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 409 {object} models.ApiResponse
// @Router /menu-items [post]
func CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid menu item data: "+err.Error()))
		return
	}

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	config.DashboardGorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("restaurant_id = ? AND name = ?", restaurantID, req.Name).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A menu item with this name already exists"))
		return
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		ID:            uuid.New().String(),
		RestaurantID:  restaurantID,
		Name:          req.Name,
		Category:      req.Category,
		MacroCategory: req.MacroCategory,
		PriceCents:    req.PriceCents,
		CostCents:     req.CostCents,
		IsCurrentMenu: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.IsCoreMenu != nil {
		item.IsCoreMenu = *req.IsCoreMenu
	}
	if req.IsCurrentMenu != nil {
		item.IsCurrentMenu = *req.IsCurrentMenu
	}
	if req.IntroducedAt != nil {
		if t, err := time.Parse("2006-01-02", *req.IntroducedAt); err == nil {
			item.IntroducedAt = &t
		} else {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "introduced_at must be YYYY-MM-DD"))
			return
		}
	}
	applyCostPercent(&item)

	if err := config.DashboardGorm.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[menu.create] ERROR create item err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create menu item"))
		return
	}

	report_cache.Invalidate(restaurantID)
	c.Set("auditResourceName", item.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Menu item created", item))
}

// applyCostPercent keeps the derived cost_percent in sync with the override
func applyCostPercent(item *models.MenuItem) {
	if item.CostCents == nil || item.PriceCents <= 0 {
		item.CostPercent = nil
		return
	}
	pct := float64(*item.CostCents) / float64(item.PriceCents) * 100
	item.CostPercent = &pct
}
