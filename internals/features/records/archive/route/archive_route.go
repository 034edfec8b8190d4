package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/records/archive/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func ArchiveRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArchiveController(db)

	// Any staff role may archive and browse; restore and permanent delete
	// stay with superadmin.
	archives := api.Group("/archives",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("archives"), constants.AllRoles...),
	)
	archives.Get("/", ctrl.GetArchives)
	archives.Post("/", ctrl.CreateArchive)

	archives.Post("/restore/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("archive restore"), constants.SuperadminOnly...),
		ctrl.RestoreArchive)
	archives.Delete("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("archive deletion"), constants.SuperadminOnly...),
		ctrl.DeleteArchive)
}
