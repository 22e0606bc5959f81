package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"menu-items": models.ResourceTypeMenuItem,
	"imports":    models.ResourceTypeImport,
	"settings":   models.ResourceTypeSettings,
	"invites":    models.ResourceTypeInvite,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// AuditLoggingMiddleware records successful mutating requests per tenant.
// Must be used AFTER AuthMiddleware (which sets userID and restaurantID).
// Reads are never logged; failed requests are never logged.
func AuditLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		resourceType := resourceTypeFromPath(c.FullPath())
		if resourceType == "" {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		userID, okUser := GetUserIDFromContext(c)
		restaurantID, okTenant := GetRestaurantIDFromContext(c)
		if !okUser || !okTenant {
			log.Printf("[audit] warning: user info not in context for %s %s", c.Request.Method, c.FullPath())
			return
		}
		email, _ := GetUserEmailFromContext(c)

		action := methodToActionVerb[c.Request.Method]
		if action == "" {
			action = strings.ToLower(c.Request.Method)
		}
		// upload endpoints read better as "uploaded"
		if resourceType == models.ResourceTypeImport && c.Request.Method == "POST" {
			action = "uploaded"
		}

		entry := models.AuditLog{
			ID:           uuid.New().String(),
			RestaurantID: restaurantID,
			UserID:       userID,
			UserEmail:    email,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			ResourceName: c.GetString("auditResourceName"), // handlers may set this
			CreatedAt:    time.Now().UTC(),
		}

		// fire and forget; auditing must not fail the request
		go func() {
			ctx, cancel := config.WithTimeout()
			defer cancel()
			if err := config.DashboardGorm.WithContext(ctx).Create(&entry).Error; err != nil {
				log.Printf("[audit] failed to write entry: %v", err)
			}
		}()
	}
}

func resourceTypeFromPath(fullPath string) string {
	for segment, resourceType := range pathToResourceType {
		if strings.Contains(fullPath, "/"+segment) {
			return resourceType
		}
	}
	return ""
}
