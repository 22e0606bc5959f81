package analytics_controller

import (
	"net/http"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/menuengine"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// GetRecommendations godoc
// @Summary Rule-based action list
// @Description Promote/cut/bundle suggestions derived from the menu
// @Description engineering report, the co-purchase pairs and the
// @Description restaurant's rule config. Rebuilt on every call.
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} models.ApiResponse{data=[]models.Recommendation}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/recommendations [get]
func GetRecommendations(c *gin.Context) {
	report, pairs, _, _, ok := loadReport(c)
	if !ok {
		return
	}

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	cfg := services.LoadRuleConfig(ctx, restaurantID)

	recommendations := menuengine.Recommend(report, pairs, cfg)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recommendations", recommendations))
}

// GetBundles godoc
// @Summary Co-purchase pairs
// @Description Pairs of items ordered together in the window, strongest first
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} models.ApiResponse{data=[]models.BundlePair}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/bundles [get]
func GetBundles(c *gin.Context) {
	_, pairs, _, _, ok := loadReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Co-purchase pairs", pairs))
}
