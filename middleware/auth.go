package middleware

import (
	"net/http"
	"strings"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the dashboard JWT from cookie or Authorization
// header and resolves the tenant into the request context. Every handler
// behind it reads the restaurant ID from the context, never from client
// input, so a token can only ever see its own restaurant.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := services.VerifyDashboardJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		if claims.RestaurantID == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Token carries no restaurant"))
			c.Abort()
			return
		}

		// Set user and tenant info in context
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("restaurantID", claims.RestaurantID)

		c.Next()
	}
}

// RequireOwner blocks viewing operators from mutating endpoints.
// Must run after AuthMiddleware.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != models.RoleOwner {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Owner access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("userEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetRestaurantIDFromContext returns the tenant resolved by AuthMiddleware
func GetRestaurantIDFromContext(c *gin.Context) (string, bool) {
	restaurantID, exists := c.Get("restaurantID")
	if !exists {
		return "", false
	}
	return restaurantID.(string), true
}
