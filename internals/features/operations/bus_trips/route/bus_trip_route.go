package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/operations/bus_trips/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func BusTripRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBusTripController(db)

	trips := api.Group("/bustrips",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("bus trips"), constants.BusStaff...),
	)
	trips.Get("/", ctrl.GetBusTrips)
	trips.Post("/", ctrl.CreateBusTrip)
	trips.Put("/:id/depart", ctrl.DepartBusTrip)
	trips.Put("/:id", ctrl.UpdateBusTrip)
	trips.Delete("/:id", ctrl.DeleteBusTrip)
}
