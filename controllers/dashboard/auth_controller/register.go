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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Register godoc
// @Summary Register a restaurant owner
// @Description Creates a restaurant and its owner account, returns a session token
// @Tags Dashboard - Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration data: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Reject duplicate accounts
	var existing models.User
	if err := config.DashboardGorm.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}

	passwordHash, err := services.GetAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] ERROR hash password err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	now := time.Now().UTC()
	restaurant := models.Restaurant{
		ID:        uuid.New().String(),
		Name:      req.RestaurantName,
		SlugName:  slugify(req.RestaurantName),
		Currency:  "EUR",
		Timezone:  "UTC",
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := models.User{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		Email:        email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         models.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = config.DashboardGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		log.Printf("[auth.register] ERROR create restaurant/owner err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := services.GetJWTService().GenerateDashboardJWT(owner.ID, restaurant.ID, owner.Email, owner.Role)
	if err != nil {
		log.Printf("[auth.register] ERROR generate token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	setAuthCookie(c, token)
	log.Printf("[auth.register] restaurant=%s owner=%s", restaurant.ID, owner.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", gin.H{
		"token":      token,
		"user":       owner,
		"restaurant": restaurant,
	}))
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, slug)
}

// setAuthCookie sets the session cookie the same way for login and register
func setAuthCookie(c *gin.Context, token string) {
	secure := gin.Mode() == gin.ReleaseMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, int((7 * 24 * time.Hour).Seconds()), "/", "", secure, true)
}
