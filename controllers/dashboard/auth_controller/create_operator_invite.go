package auth_controller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const inviteTTL = 7 * 24 * time.Hour

// CreateOperatorInvite godoc
// @Summary Invite a viewing operator
// @Description Owner-only. Emails an invite link for read-only dashboard access
// @Tags Dashboard - Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateInviteRequest true "Invitee"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /invites [post]
func CreateOperatorInvite(c *gin.Context) {
	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid invite data: "+err.Error()))
		return
	}

	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	if err := config.DashboardGorm.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}

	auth := services.GetAuthService()
	token, err := auth.GenerateInviteToken()
	if err != nil {
		log.Printf("[auth.invite] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create invite"))
		return
	}

	invite := models.OperatorInvite{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Email:        email,
		Name:         req.Name,
		TokenHash:    auth.HashToken(token),
		ExpiresAt:    time.Now().UTC().Add(inviteTTL),
		CreatedAt:    time.Now().UTC(),
	}
	if err := config.DashboardGorm.WithContext(ctx).Create(&invite).Error; err != nil {
		log.Printf("[auth.invite] ERROR create invite err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create invite"))
		return
	}

	var restaurant models.Restaurant
	if err := config.DashboardGorm.WithContext(ctx).Where("id = ?", restaurantID).First(&restaurant).Error; err != nil {
		log.Printf("[auth.invite] WARN load restaurant err=%v", err)
	}

	baseURL := os.Getenv("DASHBOARD_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	inviteLink := fmt.Sprintf("%s/invite?token=%s", baseURL, token)

	// email failures are logged, not surfaced; the owner can resend
	go func() {
		err := services.NewResendClient().SendOperatorInviteEmail(services.OperatorInviteEmailData{
			OperatorName:   req.Name,
			OperatorEmail:  email,
			RestaurantName: restaurant.Name,
			InviteLink:     inviteLink,
		})
		if err != nil {
			log.Printf("[auth.invite] WARN send email err=%v", err)
		}
	}()

	c.Set("auditResourceName", email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Invite sent", invite))
}
