package settings_controller

import (
	"net/http"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetRuleConfig godoc
// @Summary Recommendation rule config
// @Description Returns the restaurant's thresholds, migrated to the current
// @Description schema. Never errors on a missing or legacy stored config.
// @Tags Dashboard - Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.RuleConfig}
// @Router /settings/rules [get]
func GetRuleConfig(c *gin.Context) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cfg := services.LoadRuleConfig(ctx, restaurantID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rule config", cfg))
}
