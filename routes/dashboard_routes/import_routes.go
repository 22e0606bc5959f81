package dashboard_routes

import (
	"github.com/Platewise-Analytics/platewise-dashboard-backend/controllers/dashboard/import_controller"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupImportRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports")

	imports.GET("", import_controller.GetImportJobs)
	imports.POST("", middleware.RequireOwner(), import_controller.UploadSalesCSV)
}
