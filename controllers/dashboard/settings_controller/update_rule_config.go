package settings_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/menuengine"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// UpdateRuleConfig godoc
// @Summary Update recommendation thresholds
// @Description Owner-only partial update. Unspecified fields keep their
// @Description current (or default) values; the version stamp is bumped to
// @Description the current schema.
// @Tags Dashboard - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateRuleConfigRequest true "Thresholds to change"
// @Success 200 {object} models.ApiResponse{data=models.RuleConfig}
// @Failure 400 {object} models.ApiResponse
// @Router /settings/rules [put]
func UpdateRuleConfig(c *gin.Context) {
	var req models.UpdateRuleConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid rule config: "+err.Error()))
		return
	}

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cfg := services.LoadRuleConfig(ctx, restaurantID)

	if req.PromoteMinQuantity != nil {
		cfg.PromoteMinQuantity = *req.PromoteMinQuantity
	}
	if req.PromoteMinRevenue != nil {
		cfg.PromoteMinRevenue = *req.PromoteMinRevenue
	}
	if req.CutMaxQuantity != nil {
		cfg.CutMaxQuantity = *req.CutMaxQuantity
	}
	if req.CutMaxRevenue != nil {
		cfg.CutMaxRevenue = *req.CutMaxRevenue
	}
	if req.CutDaysInactive != nil {
		cfg.CutDaysInactive = *req.CutDaysInactive
	}
	if req.BundleMinFrequency != nil {
		cfg.BundleMinFrequency = *req.BundleMinFrequency
	}
	if req.BundleMinSupport != nil {
		cfg.BundleMinSupport = *req.BundleMinSupport
	}
	cfg = menuengine.NormalizeRuleConfig(cfg)

	settings := models.RestaurantSettings{
		RestaurantID: restaurantID,
		RuleConfig:   cfg,
		UpdatedBy:    userID,
		UpdatedAt:    time.Now().UTC(),
	}
	err := config.DashboardGorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			UpdateAll: true,
		}).
		Create(&settings).Error
	if err != nil {
		log.Printf("[settings.update] ERROR save rule config err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save rule config"))
		return
	}

	c.Set("auditResourceName", "rule config")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rule config saved", cfg))
}
