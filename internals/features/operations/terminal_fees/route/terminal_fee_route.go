package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/operations/terminal_fees/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func TerminalFeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTerminalFeeController(db)

	fees := api.Group("/terminal-fees",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("terminal fees"), constants.TicketStaff...),
	)
	// settings before :id so "settings" is not captured as an id
	fees.Get("/settings", ctrl.GetFeeSettings)
	fees.Put("/settings", ctrl.UpdateFeeSettings)

	fees.Get("/", ctrl.GetTerminalFees)
	fees.Post("/", ctrl.CreateTerminalFee)
	fees.Put("/:id", ctrl.UpdateTerminalFee)
	fees.Delete("/:id", ctrl.DeleteTerminalFee)
}
