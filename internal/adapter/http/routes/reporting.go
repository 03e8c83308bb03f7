package routes

import (
	"resto_requests/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathReports   = "/reports"
)

func addReportingRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, reportHandler *handlers.ReportHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
	rg.GET(PathReports, reportHandler.GetReport)
}
