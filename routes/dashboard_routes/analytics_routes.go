package dashboard_routes

import (
	"github.com/Platewise-Analytics/platewise-dashboard-backend/controllers/dashboard/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetOverview)
	analytics.GET("/top-items", analytics_controller.GetTopItems)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
	analytics.GET("/menu-engineering", analytics_controller.GetMenuEngineering)
	analytics.GET("/recommendations", analytics_controller.GetRecommendations)
	analytics.GET("/bundles", analytics_controller.GetBundles)
}
