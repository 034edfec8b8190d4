package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/records/deletion_requests/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func DeletionRequestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDeletionRequestController(db)

	// Filing is open to all staff; resolving is superadmin territory.
	requests := api.Group("/deletion-requests",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("deletion requests"), constants.AllRoles...),
	)
	requests.Get("/", ctrl.GetDeletionRequests)
	requests.Post("/", ctrl.CreateDeletionRequest)

	requests.Post("/bulk-approve",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("deletion approval"), constants.SuperadminOnly...),
		ctrl.BulkApprove)
	requests.Put("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("deletion approval"), constants.SuperadminOnly...),
		ctrl.ResolveDeletionRequest)
}
