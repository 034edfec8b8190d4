package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/operations/lost_found/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func LostFoundRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLostFoundController(db)

	items := api.Group("/lostfound",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("lost and found"), constants.LostFoundStaff...),
	)
	items.Get("/", ctrl.GetLostFoundItems)
	items.Post("/", ctrl.CreateLostFoundItem)
	items.Put("/:id/claim", ctrl.ClaimLostFoundItem)
	items.Put("/:id", ctrl.UpdateLostFoundItem)
	items.Delete("/:id", ctrl.DeleteLostFoundItem)
}
