package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/operations/parking/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func ParkingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParkingController(db)

	parking := api.Group("/parking",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("parking"), constants.ParkingStaff...),
	)
	parking.Get("/", ctrl.GetParkingTickets)
	parking.Post("/", ctrl.CreateParking)
	parking.Put("/:id/depart", ctrl.DepartParking)
	parking.Put("/:id", ctrl.UpdateParking)
	parking.Delete("/:id", ctrl.DeleteParking)
}
