package auth_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Log in to the dashboard
// @Description Validates credentials and returns a session token
// @Tags Dashboard - Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid login data"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.DashboardGorm.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil || !services.GetAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		// same answer for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GetJWTService().GenerateDashboardJWT(user.ID, user.RestaurantID, user.Email, user.Role)
	if err != nil {
		log.Printf("[auth.login] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	now := time.Now().UTC()
	if err := config.DashboardGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth.login] WARN update last_login_at err=%v", err)
	}

	setAuthCookie(c, token)
	log.Printf("[auth.login] user=%s restaurant=%s", user.ID, user.RestaurantID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", gin.H{
		"token": token,
		"user":  user,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags Dashboard - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
