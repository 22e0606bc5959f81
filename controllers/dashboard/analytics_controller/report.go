package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/cache/report_cache"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/menuengine"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// loadReport resolves the window from query params and returns the cached
// classification report plus co-purchase pairs for the tenant, computing and
// caching them when stale. Writes the error response itself; callers bail
// out when ok is false.
func loadReport(c *gin.Context) (models.MenuEngineeringReport, []models.BundlePair, time.Time, time.Time, bool) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	from, to, err := services.GetStatsService().ResolveWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return models.MenuEngineeringReport{}, nil, time.Time{}, time.Time{}, false
	}

	if report, pairs, ok := report_cache.GetReport(restaurantID, from, to); ok {
		return report, pairs, from, to, true
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.GetStatsService().MenuItemStats(ctx, restaurantID, from, to, true)
	if err != nil {
		log.Printf("[analytics.report] ERROR stats restaurant=%s err=%v", restaurantID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to aggregate sales"))
		return models.MenuEngineeringReport{}, nil, time.Time{}, time.Time{}, false
	}

	items, totalOrders, err := services.GetStatsService().OrderItemsInWindow(ctx, restaurantID, from, to)
	if err != nil {
		log.Printf("[analytics.report] ERROR order items restaurant=%s err=%v", restaurantID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to aggregate sales"))
		return models.MenuEngineeringReport{}, nil, time.Time{}, time.Time{}, false
	}

	report := menuengine.Classify(stats)
	pairs := menuengine.CountPairs(items, totalOrders)

	report_cache.SetReport(restaurantID, from, to, report, pairs)
	return report, pairs, from, to, true
}
