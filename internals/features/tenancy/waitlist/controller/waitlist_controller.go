package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/tenancy/waitlist/dto"
	"ibt_backend/internals/features/tenancy/waitlist/model"
	"ibt_backend/internals/features/tenancy/waitlist/service"
	helper "ibt_backend/internals/helpers"
)

type WaitlistController struct {
	DB *gorm.DB
}

func NewWaitlistController(db *gorm.DB) *WaitlistController {
	return &WaitlistController{DB: db}
}

// 🟢 GET /api/waitlist
// Promoted applications (status TENANT) are kept but can be filtered out.
func (ctrl *WaitlistController) GetWaitlist(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TenantApplicationModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("tenant_application_status = ?", status)
	}
	if c.Query("active") == "true" {
		q = q.Where("tenant_application_status <> ?", model.StatusTenant)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var apps []model.TenantApplicationModel
	if err := q.
		Order("tenant_application_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&apps).Error; err != nil {
		log.Printf("[ERROR] list waitlist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	return helper.JsonList(c, dto.ToApplicationResponseList(apps), helper.BuildMeta(total, p))
}

// 🟢 GET /api/waitlist/:id
func (ctrl *WaitlistController) GetWaitlistByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var app model.TenantApplicationModel
	if err := ctrl.DB.Where("tenant_application_id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch application")
	}

	return helper.JsonOK(c, "ok", dto.ToApplicationResponse(&app))
}

// 🟢 POST /api/waitlist
func (ctrl *WaitlistController) CreateWaitlistEntry(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	app := req.ToModel()
	if err := ctrl.DB.Create(app).Error; err != nil {
		log.Printf("[ERROR] create application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create application")
	}

	return helper.JsonCreated(c, "Application submitted", dto.ToApplicationResponse(app))
}

// 🟢 PUT /api/waitlist/:id
// A status change must follow the approval pipeline; other fields may be
// edited freely. Status mails are best effort and never block the update.
func (ctrl *WaitlistController) UpdateWaitlistEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var app model.TenantApplicationModel
	if err := ctrl.DB.Where("tenant_application_id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Applicant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch application")
	}

	statusChanged := false
	if req.TenantApplicationStatus != nil && *req.TenantApplicationStatus != app.TenantApplicationStatus {
		newStatus := *req.TenantApplicationStatus
		if !service.IsKnownStatus(newStatus) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unknown application status: "+newStatus)
		}
		if err := service.ValidateTransition(app.TenantApplicationStatus, newStatus, app.TenantApplicationTenantType); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		app.TenantApplicationStatus = newStatus
		statusChanged = true
	}

	if req.TenantApplicationName != nil {
		app.TenantApplicationName = *req.TenantApplicationName
	}
	if req.TenantApplicationEmail != nil {
		app.TenantApplicationEmail = *req.TenantApplicationEmail
	}
	if req.TenantApplicationBusinessType != nil {
		app.TenantApplicationBusinessType = *req.TenantApplicationBusinessType
	}
	if req.TenantApplicationPreferredSlot != nil {
		app.TenantApplicationPreferredSlot = *req.TenantApplicationPreferredSlot
	}
	if req.TenantApplicationRemarks != nil {
		app.TenantApplicationRemarks = *req.TenantApplicationRemarks
	}

	if err := ctrl.DB.Save(&app).Error; err != nil {
		log.Printf("[ERROR] update application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application")
	}

	if statusChanged {
		service.NotifyStatusChange(&app, app.TenantApplicationStatus)
	}

	return helper.JsonUpdated(c, "Application updated", dto.ToApplicationResponse(&app))
}

// 🛑 DELETE /api/waitlist/:id
func (ctrl *WaitlistController) DeleteWaitlistEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("tenant_application_id = ?", id).Delete(&model.TenantApplicationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete application")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}

	return helper.JsonDeleted(c, "Application deleted", nil)
}
