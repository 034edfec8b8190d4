package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/users/user/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

// Employee management, superadmin only.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("employee management"), constants.SuperadminOnly...),
	)
	users.Get("/", ctrl.GetAllUsers)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
