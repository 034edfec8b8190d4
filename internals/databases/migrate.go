package database

import (
	"log"

	"gorm.io/gorm"

	busTripModel "ibt_backend/internals/features/operations/bus_trips/model"
	lostFoundModel "ibt_backend/internals/features/operations/lost_found/model"
	parkingModel "ibt_backend/internals/features/operations/parking/model"
	terminalFeeModel "ibt_backend/internals/features/operations/terminal_fees/model"
	archiveModel "ibt_backend/internals/features/records/archive/model"
	deletionRequestModel "ibt_backend/internals/features/records/deletion_requests/model"
	notificationModel "ibt_backend/internals/features/records/notifications/model"
	reportModel "ibt_backend/internals/features/records/reports/model"
	tenantModel "ibt_backend/internals/features/tenancy/tenants/model"
	waitlistModel "ibt_backend/internals/features/tenancy/waitlist/model"
	userModel "ibt_backend/internals/features/users/user/model"
)

func Migrate(db *gorm.DB) {
	log.Println("🚀 Running migrations...")
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&parkingModel.ParkingModel{},
		&busTripModel.BusTripModel{},
		&terminalFeeModel.TerminalFeeModel{},
		&terminalFeeModel.FeeSettingModel{},
		&lostFoundModel.LostFoundModel{},
		&tenantModel.TenantModel{},
		&waitlistModel.TenantApplicationModel{},
		&reportModel.ReportModel{},
		&archiveModel.ArchiveModel{},
		&deletionRequestModel.DeletionRequestModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migrations complete.")
}
