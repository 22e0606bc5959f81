package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetTopItems godoc
// @Summary Get top performing menu items
// @Description Returns the best selling items in the window with sales count,
// @Description revenue, and share of window revenue
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Number of items" default(6)
// @Success 200 {object} models.ApiResponse{data=[]models.TopItem}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/top-items [get]
func GetTopItems(c *gin.Context) {
	log.Printf("[analytics.top-items] start")

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	from, to, err := services.GetStatsService().ResolveWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 50 {
		limit = 6
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// ================================
	// Get total revenue in the window (for percentage calculation)
	// ================================
	var totalRevenue int64
	if err := config.DashboardGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("restaurant_id = ? AND ordered_at >= ? AND ordered_at < ?", restaurantID, from, to).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&totalRevenue).Error; err != nil {
		log.Printf("[analytics.top-items] ERROR total revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top items"))
		return
	}

	// ================================
	// Get top items in the window
	// ================================
	topItems := make([]models.TopItem, 0, limit)
	if err := config.DashboardGorm.WithContext(ctx).Raw(`
		SELECT
			oi.item_name,
			MAX(oi.category) AS category,
			COUNT(DISTINCT oi.order_id) AS order_count,
			SUM(oi.quantity) AS sales_count,
			SUM(oi.subtotal_cents) AS revenue_cents
		FROM order_items oi
		WHERE oi.restaurant_id = ? AND oi.ordered_at >= ? AND oi.ordered_at < ?
		GROUP BY oi.item_name
		ORDER BY revenue_cents DESC
		LIMIT ?
	`, restaurantID, from, to, limit).
		Scan(&topItems).Error; err != nil {
		log.Printf("[analytics.top-items] ERROR query top items err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top items"))
		return
	}

	// ================================
	// Calculate revenue percentage for each item
	// ================================
	for i := range topItems {
		if totalRevenue > 0 {
			topItems[i].RevenuePercent = float64(topItems[i].RevenueCents) / float64(totalRevenue) * 100
		} else {
			topItems[i].RevenuePercent = 0
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top items", topItems))
}
