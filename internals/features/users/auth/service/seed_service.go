package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ibt_backend/internals/configs"
	"ibt_backend/internals/constants"
	userModel "ibt_backend/internals/features/users/user/model"
)

// EnsureSuperadmin creates the bootstrap superadmin account when the users
// table has none. Controlled via SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD.
func EnsureSuperadmin(db *gorm.DB) {
	if configs.SuperadminPassword == "" {
		log.Println("⚠️ SUPERADMIN_PASSWORD not set, skipping superadmin seed")
		return
	}

	var existing userModel.UserModel
	err := db.Where("user_role = ?", constants.RoleSuperadmin).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] superadmin seed lookup: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(configs.SuperadminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] superadmin seed hash: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserEmail:    configs.SuperadminEmail,
		UserPassword: string(hashed),
		UserRole:     constants.RoleSuperadmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] superadmin seed create: %v", err)
		return
	}
	log.Printf("✅ Superadmin %s seeded.", admin.UserEmail)
}
