package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary Dashboard overview
// @Description Revenue, orders and item counts for the window, with growth
// @Description percentages against the preceding window of equal length
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} models.ApiResponse{data=models.DashboardOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/overview [get]
func GetOverview(c *gin.Context) {
	log.Printf("[analytics.overview] start")

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	from, to, err := services.GetStatsService().ResolveWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	// preceding window of equal length for growth comparison
	prevFrom := from.Add(-to.Sub(from))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	type windowTotals struct {
		Revenue int64
		Orders  int
		Units   int
		Items   int
	}

	queryWindow := func(start, end interface{}) (windowTotals, error) {
		var totals windowTotals
		err := config.DashboardGorm.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(o.total_cents), 0) AS revenue,
				COUNT(o.id) AS orders,
				COALESCE((
					SELECT SUM(oi.quantity) FROM order_items oi
					WHERE oi.restaurant_id = @rid AND oi.ordered_at >= @from AND oi.ordered_at < @to
				), 0) AS units,
				COALESCE((
					SELECT COUNT(DISTINCT oi.item_name) FROM order_items oi
					WHERE oi.restaurant_id = @rid AND oi.ordered_at >= @from AND oi.ordered_at < @to
				), 0) AS items
			FROM orders o
			WHERE o.restaurant_id = @rid AND o.ordered_at >= @from AND o.ordered_at < @to
		`, map[string]interface{}{"rid": restaurantID, "from": start, "to": end}).
			Scan(&totals).Error
		return totals, err
	}

	current, err := queryWindow(from, to)
	if err != nil {
		log.Printf("[analytics.overview] ERROR current window err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch overview"))
		return
	}
	previous, err := queryWindow(prevFrom, from)
	if err != nil {
		log.Printf("[analytics.overview] ERROR previous window err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch overview"))
		return
	}

	overview := models.DashboardOverview{
		TotalRevenueCents:    current.Revenue,
		RevenueGrowthPercent: growthPercent(float64(current.Revenue), float64(previous.Revenue)),
		TotalOrders:          current.Orders,
		OrdersGrowthPercent:  growthPercent(float64(current.Orders), float64(previous.Orders)),
		ItemsSold:            current.Units,
		ActiveItems:          current.Items,
	}
	if current.Orders > 0 {
		overview.AvgTicketCents = current.Revenue / int64(current.Orders)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview", overview))
}

// growthPercent is the % change from previous to current; 0 when there is
// no previous baseline.
func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
