package auth_controller

import (
	"net/http"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Current account
// @Description Returns the authenticated user and their restaurant
// @Tags Dashboard - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DashboardGorm.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account not found"))
		return
	}

	var restaurant models.Restaurant
	if err := config.DashboardGorm.WithContext(ctx).
		Where("id = ?", restaurantID).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load restaurant"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account", gin.H{
		"user":       user,
		"restaurant": restaurant,
	}))
}
