package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	busTripRoute "ibt_backend/internals/features/operations/bus_trips/route"
	lostFoundRoute "ibt_backend/internals/features/operations/lost_found/route"
	parkingRoute "ibt_backend/internals/features/operations/parking/route"
	terminalFeeRoute "ibt_backend/internals/features/operations/terminal_fees/route"
	archiveRoute "ibt_backend/internals/features/records/archive/route"
	deletionRequestRoute "ibt_backend/internals/features/records/deletion_requests/route"
	notificationRoute "ibt_backend/internals/features/records/notifications/route"
	reportRoute "ibt_backend/internals/features/records/reports/route"
	tenantRoute "ibt_backend/internals/features/tenancy/tenants/route"
	waitlistRoute "ibt_backend/internals/features/tenancy/waitlist/route"
	authRoute "ibt_backend/internals/features/users/auth/route"
	userRoute "ibt_backend/internals/features/users/user/route"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public auth endpoints first, then everything else
// behind JWT under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware())

	// 👥 Users
	userRoute.UserRoutes(api, db)

	// 🚍 Terminal operations
	parkingRoute.ParkingRoutes(api, db)
	busTripRoute.BusTripRoutes(api, db)
	terminalFeeRoute.TerminalFeeRoutes(api, db)
	lostFoundRoute.LostFoundRoutes(api, db)

	// 🏪 Tenancy
	tenantRoute.TenantRoutes(api, db)
	waitlistRoute.WaitlistRoutes(api, db)

	// 🗂️ Records
	reportRoute.ReportRoutes(api, db)
	archiveRoute.ArchiveRoutes(api, db)
	deletionRequestRoute.DeletionRequestRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
}
