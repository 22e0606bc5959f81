package menu_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMenuItems godoc
// @Summary Get paginated menu items
// @Description Retrieve the menu card with pagination and optional filtering
// @Tags Dashboard - Menu
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param category query string false "Filter by category"
// @Param current query bool false "Only items currently on the menu"
// @Param q query string false "Name search (case-insensitive substring)"
// @Success 200 {object} models.ApiResponse{data=[]models.MenuItem}
// @Failure 500 {object} models.ApiResponse
// @Router /menu-items [get]
func GetMenuItems(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Build query with optional filters
	query := config.DashboardGorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("restaurant_id = ?", restaurantID)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if current := c.Query("current"); current == "true" {
		query = query.Where("is_current_menu = TRUE")
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	// Step 3: Count total items
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count menu items"))
		return
	}

	// Step 4: Fetch the page
	items := make([]models.MenuItem, 0)
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu items"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Menu items", items, meta))
}

// GetMenuItemByID godoc
// @Summary Get a menu item
// @Tags Dashboard - Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 404 {object} models.ApiResponse
// @Router /menu-items/{id} [get]
func GetMenuItemByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item", item))
}
