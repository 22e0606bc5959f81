package analytics_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMonthlyRevenue godoc
// @Summary Monthly revenue series
// @Description Revenue and order count per month for a calendar year
// @Tags Dashboard - Analytics
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year, default current"
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	year := time.Now().UTC().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "invalid year"))
			return
		}
		year = parsed
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	type monthRow struct {
		Month   int
		Revenue int64
		Orders  int
	}
	rows := make([]monthRow, 0, 12)
	err := config.DashboardGorm.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM ordered_at)::int AS month,
			COALESCE(SUM(total_cents), 0) AS revenue,
			COUNT(id) AS orders
		FROM orders
		WHERE restaurant_id = ?
			AND ordered_at >= ? AND ordered_at < ?
		GROUP BY month
		ORDER BY month
	`, restaurantID,
		time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC)).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[analytics.monthly-revenue] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	// always return twelve months; empty months stay at zero
	data := make([]models.MonthlyRevenueData, 12)
	for i := 0; i < 12; i++ {
		data[i] = models.MonthlyRevenueData{
			Month:       time.Month(i + 1).String()[:3],
			MonthNumber: i + 1,
			Year:        year,
		}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			data[row.Month-1].RevenueCents = row.Revenue
			data[row.Month-1].OrderCount = row.Orders
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue", data))
}
