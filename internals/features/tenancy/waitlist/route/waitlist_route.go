package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/tenancy/waitlist/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func WaitlistRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWaitlistController(db)

	waitlist := api.Group("/waitlist",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("waitlist"), constants.LeaseStaff...),
	)
	waitlist.Get("/", ctrl.GetWaitlist)
	waitlist.Get("/:id", ctrl.GetWaitlistByID)
	waitlist.Post("/", ctrl.CreateWaitlistEntry)
	waitlist.Put("/:id", ctrl.UpdateWaitlistEntry)
	waitlist.Delete("/:id", ctrl.DeleteWaitlistEntry)
}
