package analytics_controller

import (
	"net/http"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMenuEngineering godoc
// @Summary Menu engineering report
// @Description Classifies every active item into star/plowhorse/puzzle/dog
// @Description relative to the window's quantity and profitability medians.
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD), default 30 days ago"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive), default today"
// @Success 200 {object} models.ApiResponse{data=models.MenuEngineeringReport}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/menu-engineering [get]
func GetMenuEngineering(c *gin.Context) {
	report, _, from, to, ok := loadReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu engineering report", gin.H{
		"report": report,
		"window": gin.H{
			"from": from.Format("2006-01-02"),
			"to":   to.AddDate(0, 0, -1).Format("2006-01-02"),
		},
	}))
}
