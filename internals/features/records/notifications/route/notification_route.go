package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/records/notifications/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("notifications"), constants.AllRoles...),
	)
	notifications.Get("/", ctrl.GetNotifications)
	notifications.Put("/:id/read", ctrl.MarkNotificationRead)

	notifications.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("notification creation"), constants.SuperadminOnly...),
		ctrl.CreateNotification)
	notifications.Delete("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("notification deletion"), constants.SuperadminOnly...),
		ctrl.DeleteNotification)
}
