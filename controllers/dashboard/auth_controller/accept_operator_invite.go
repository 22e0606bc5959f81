package auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcceptOperatorInvite godoc
// @Summary Accept an operator invite
// @Description Turns a valid invite token plus a password into an operator account
// @Tags Dashboard - Auth
// @Accept json
// @Produce json
// @Param request body models.AcceptInviteRequest true "Token and password"
// @Success 201 {object} models.ApiResponse
// @Failure 410 {object} models.ApiResponse
// @Router /auth/accept-invite [post]
func AcceptOperatorInvite(c *gin.Context) {
	var req models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid invite data: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	auth := services.GetAuthService()

	var invite models.OperatorInvite
	err := config.DashboardGorm.WithContext(ctx).
		Where("token_hash = ? AND accepted_at IS NULL", auth.HashToken(req.Token)).
		First(&invite).Error
	if err != nil {
		c.JSON(http.StatusGone, models.ErrorResponse(c, "Invite not found or already used"))
		return
	}
	if time.Now().UTC().After(invite.ExpiresAt) {
		c.JSON(http.StatusGone, models.ErrorResponse(c, "Invite has expired"))
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.accept-invite] ERROR hash password err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	now := time.Now().UTC()
	operator := models.User{
		ID:           uuid.New().String(),
		RestaurantID: invite.RestaurantID,
		Email:        invite.Email,
		Name:         invite.Name,
		PasswordHash: passwordHash,
		Role:         models.RoleOperator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = config.DashboardGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&operator).Error; err != nil {
			return err
		}
		return tx.Model(&models.OperatorInvite{}).
			Where("id = ?", invite.ID).
			Update("accepted_at", now).Error
	})
	if err != nil {
		log.Printf("[auth.accept-invite] ERROR create operator err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := services.GetJWTService().GenerateDashboardJWT(operator.ID, operator.RestaurantID, operator.Email, operator.Role)
	if err != nil {
		log.Printf("[auth.accept-invite] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	setAuthCookie(c, token)
	log.Printf("[auth.accept-invite] operator=%s restaurant=%s", operator.ID, operator.RestaurantID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", gin.H{
		"token": token,
		"user":  operator,
	}))
}
