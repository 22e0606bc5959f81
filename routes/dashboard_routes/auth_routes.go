package dashboard_routes

import (
	"github.com/Platewise-Analytics/platewise-dashboard-backend/controllers/dashboard/auth_controller"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	auth.POST("/register", auth_controller.Register)
	auth.POST("/login", auth_controller.Login)
	auth.POST("/logout", auth_controller.Logout)
	auth.POST("/accept-invite", auth_controller.AcceptOperatorInvite)

	auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
}

func SetupInviteRoutes(rg *gin.RouterGroup) {
	// owner-only; rg already carries auth + audit logging
	rg.POST("/invites", middleware.RequireOwner(), auth_controller.CreateOperatorInvite)
}
