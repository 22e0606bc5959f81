package dashboard_routes

import (
	"github.com/Platewise-Analytics/platewise-dashboard-backend/controllers/dashboard/settings_controller"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")

	settings.GET("/rules", settings_controller.GetRuleConfig)
	settings.PUT("/rules", middleware.RequireOwner(), settings_controller.UpdateRuleConfig)
}
