package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/tenancy/tenants/dto"
	"ibt_backend/internals/features/tenancy/tenants/model"
	waitlistModel "ibt_backend/internals/features/tenancy/waitlist/model"
	helper "ibt_backend/internals/helpers"
	"ibt_backend/internals/helpers/mailer"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

// 🟢 GET /api/tenants
func (ctrl *TenantController) GetTenants(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.TenantModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tenants")
	}

	var tenants []model.TenantModel
	if err := ctrl.DB.
		Order("tenant_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&tenants).Error; err != nil {
		log.Printf("[ERROR] list tenants: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tenants")
	}

	return helper.JsonList(c, dto.ToTenantResponseList(tenants), helper.BuildMeta(total, p))
}

// 🟢 GET /api/tenants/:id
func (ctrl *TenantController) GetTenantByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var tenant model.TenantModel
	if err := ctrl.DB.Where("tenant_id = ?", id).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tenant")
	}

	return helper.JsonOK(c, "ok", dto.ToTenantResponse(&tenant))
}

// 🟢 POST /api/tenants
// When transfer_waitlist_id is set, the originating application is flipped to
// TENANT inside the same transaction. The welcome mail is best effort.
func (ctrl *TenantController) CreateTenant(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tenant := req.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		if req.TransferWaitlistID != nil {
			res := tx.Model(&waitlistModel.TenantApplicationModel{}).
				Where("tenant_application_id = ?", *req.TransferWaitlistID).
				Update("tenant_application_status", waitlistModel.StatusTenant)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Waitlist application not found")
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] create tenant: %v", err)
		return helper.FromFiberError(c, err)
	}

	if tenant.TenantEmail != "" {
		mailer.SendAsync(mailer.Message{
			To:      tenant.TenantEmail,
			Subject: "Final Approval - Welcome to IBT Stalls!",
			Body:    welcomeBody(tenant),
		})
	}

	return helper.JsonCreated(c, "Tenant created", dto.ToTenantResponse(tenant))
}

func welcomeBody(t *model.TenantModel) string {
	return fmt.Sprintf(
		"Congratulations %s!\n\n"+
			"You have been officially approved as a tenant at the Integrated Bus Terminal.\n\n"+
			"DETAILS:\n"+
			"--------------------------------\n"+
			"Stall Number: %s\n"+
			"Tenant Type:  %s\n"+
			"Rent Amount:  %.2f\n\n"+
			"RULES AND REGULATIONS:\n"+
			"1. Operating hours are from 8:00 AM to 10:00 PM.\n"+
			"2. Keep your area clean at all times.\n"+
			"3. No sub-leasing of stalls is allowed.\n"+
			"4. Monthly rent is due on day %d of every month.\n\n"+
			"You may now start operating your business.\n\nWelcome aboard!\nIBT Management",
		t.TenantName, t.TenantSlotNo, t.TenantType, t.TenantRentAmount, t.TenantStartDateTime.Day())
}

// 🟢 PUT /api/tenants/:id
func (ctrl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tenant model.TenantModel
	if err := ctrl.DB.Where("tenant_id = ?", id).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tenant")
	}

	if req.TenantSlotNo != nil {
		tenant.TenantSlotNo = *req.TenantSlotNo
	}
	if req.TenantName != nil {
		tenant.TenantName = *req.TenantName
	}
	if req.TenantType != nil {
		tenant.TenantType = *req.TenantType
	}
	if req.TenantRentAmount != nil {
		tenant.TenantRentAmount = *req.TenantRentAmount
	}
	if req.TenantUtilityAmount != nil {
		tenant.TenantUtilityAmount = *req.TenantUtilityAmount
	}
	if req.TenantStartDateTime != nil {
		tenant.TenantStartDateTime = *req.TenantStartDateTime
	}
	if req.TenantDueDateTime != nil {
		tenant.TenantDueDateTime = *req.TenantDueDateTime
	}
	if req.TenantEmail != nil {
		tenant.TenantEmail = *req.TenantEmail
	}
	if req.TenantDocuments != nil {
		tenant.TenantDocuments = req.TenantDocuments
	}
	tenant.TenantTotalAmount = tenant.TenantRentAmount + tenant.TenantUtilityAmount

	if err := ctrl.DB.Save(&tenant).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tenant")
	}

	return helper.JsonUpdated(c, "Tenant updated", dto.ToTenantResponse(&tenant))
}

// 🛑 DELETE /api/tenants/:id
func (ctrl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("tenant_id = ?", id).Delete(&model.TenantModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete tenant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tenant not found")
	}

	return helper.JsonDeleted(c, "Tenant deleted", nil)
}
