package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/records/reports/controller"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperadmin("reports"), constants.SuperadminOnly...),
	)
	reports.Get("/", ctrl.GetReports)
	reports.Get("/:id", ctrl.GetReportByID)
	reports.Get("/:id/export", ctrl.ExportReport)
	reports.Post("/", ctrl.CreateReport)
	reports.Delete("/:id", ctrl.DeleteReport)
}
