package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/constants"
	"ibt_backend/internals/features/records/notifications/dto"
	"ibt_backend/internals/features/records/notifications/model"
	helper "ibt_backend/internals/helpers"
	authHelper "ibt_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/notifications
// Staff see broadcasts plus notifications aimed at their own role;
// superadmin sees everything.
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.NotificationModel{})
	role, err := authHelper.GetRoleFromToken(c)
	if err == nil && role != constants.RoleSuperadmin {
		q = q.Where("notification_target_role IN ?", []string{model.TargetRoleAll, role})
	}
	if c.Query("unread") == "true" {
		q = q.Where("notification_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifications []model.NotificationModel
	if err := q.
		Order("notification_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&notifications).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonList(c, dto.ToNotificationResponseList(notifications), helper.BuildMeta(total, p))
}

// 🟢 POST /api/notifications
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.NotificationTargetRole != "" &&
		req.NotificationTargetRole != model.TargetRoleAll &&
		!constants.IsKnownRole(req.NotificationTargetRole) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Unknown target role: "+req.NotificationTargetRole)
	}

	notification := req.ToModel()
	if err := ctrl.DB.Create(notification).Error; err != nil {
		log.Printf("[ERROR] create notification: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	return helper.JsonCreated(c, "Notification created", dto.ToNotificationResponse(notification))
}

// 🟢 PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ?", id).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{"notification_id": id})
}

// 🛑 DELETE /api/notifications/:id
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("notification_id = ?", id).Delete(&model.NotificationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonDeleted(c, "Notification deleted", nil)
}
