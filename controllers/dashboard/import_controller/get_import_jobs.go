package import_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetImportJobs godoc
// @Summary List past imports
// @Description Import history with row/error counts, newest first
// @Tags Dashboard - Imports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.ImportJob}
// @Failure 500 {object} models.ApiResponse
// @Router /imports [get]
func GetImportJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DashboardGorm.WithContext(ctx).
		Model(&models.ImportJob{}).
		Where("restaurant_id = ?", restaurantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count imports"))
		return
	}

	jobs := make([]models.ImportJob, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch imports"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Import history", jobs, meta))
}
