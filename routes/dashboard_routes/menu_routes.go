package dashboard_routes

import (
	"github.com/Platewise-Analytics/platewise-dashboard-backend/controllers/dashboard/menu_controller"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupMenuRoutes(rg *gin.RouterGroup) {
	menu := rg.Group("/menu-items")

	menu.GET("", menu_controller.GetMenuItems)
	menu.GET("/:id", menu_controller.GetMenuItemByID)

	// mutations are owner-only
	menu.POST("", middleware.RequireOwner(), menu_controller.CreateMenuItem)
	menu.PATCH("/:id", middleware.RequireOwner(), menu_controller.UpdateMenuItem)
	menu.DELETE("/:id", middleware.RequireOwner(), menu_controller.DeleteMenuItem)
	menu.POST("/:id/photo", middleware.RequireOwner(), menu_controller.UploadMenuItemPhoto)
}
