package routes

import (
	"resto_requests/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathMaintenance = "/maintenance"
)

func addRequestRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, maintenanceHandler *handlers.MaintenanceHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		maintenance.POST("", maintenanceHandler.CreateMaintenance)
		maintenance.GET("", maintenanceHandler.ListMaintenance)
		maintenance.GET("/:id", maintenanceHandler.GetMaintenance)
		maintenance.PATCH("/:id", maintenanceHandler.UpdateMaintenance)
	}
}
