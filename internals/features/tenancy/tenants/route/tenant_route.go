package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/tenancy/tenants/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func TenantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTenantController(db)

	tenants := api.Group("/tenants",
		authMiddleware.OnlyRoles(constants.RoleErrorFeature("tenants"), constants.LeaseStaff...),
	)
	tenants.Get("/", ctrl.GetTenants)
	tenants.Get("/:id", ctrl.GetTenantByID)
	tenants.Post("/", ctrl.CreateTenant)
	tenants.Put("/:id", ctrl.UpdateTenant)
	tenants.Delete("/:id", ctrl.DeleteTenant)
}
