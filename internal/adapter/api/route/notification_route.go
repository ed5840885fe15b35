package route

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
)

// RegisterNotificationRoutes registers the notification module routes
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", notificationController.List)
		notifications.POST("/:id/read", notificationController.MarkRead)
		notifications.POST("/backup/disable", notificationController.DisableBackup)
		notifications.POST("/backup/enable", notificationController.EnableBackup)
	}
}
