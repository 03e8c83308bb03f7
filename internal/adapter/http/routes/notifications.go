package routes

import (
	"resto_requests/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNotifications = "/notifications"
)

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
	}
}
