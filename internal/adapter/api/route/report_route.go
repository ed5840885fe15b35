package route

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
)

// RegisterReportRoutes registers the report and dashboard routes
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, dashboardController *controller.DashboardController) {
	reports := r.Group("/reports")
	{
		reports.GET("/business", reportController.Summary)
		reports.GET("/business/pdf", reportController.PDF)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardController.Stats)
	}
}
