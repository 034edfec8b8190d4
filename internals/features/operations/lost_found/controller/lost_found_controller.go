package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/operations/lost_found/dto"
	"ibt_backend/internals/features/operations/lost_found/model"
	helper "ibt_backend/internals/helpers"
)

type LostFoundController struct {
	DB *gorm.DB
}

func NewLostFoundController(db *gorm.DB) *LostFoundController {
	return &LostFoundController{DB: db}
}

// 🟢 GET /api/lostfound
func (ctrl *LostFoundController) GetLostFoundItems(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.LostFoundModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("lost_found_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count items")
	}

	var items []model.LostFoundModel
	if err := q.
		Order("lost_found_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		log.Printf("[ERROR] list lost&found: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch items")
	}

	return helper.JsonList(c, dto.ToLostFoundResponseList(items), helper.BuildMeta(total, p))
}

// 🟢 POST /api/lostfound
func (ctrl *LostFoundController) CreateLostFoundItem(c *fiber.Ctx) error {
	var req dto.CreateLostFoundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := req.ToModel()
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] create lost&found: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log item")
	}

	return helper.JsonCreated(c, "Item logged", dto.ToLostFoundResponse(item))
}

// 🟢 PUT /api/lostfound/:id/claim
func (ctrl *LostFoundController) ClaimLostFoundItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var item model.LostFoundModel
	if err := ctrl.DB.Where("lost_found_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch item")
	}

	if item.LostFoundStatus == model.StatusClaimed {
		return helper.JsonError(c, fiber.StatusConflict, "Item already claimed")
	}

	item.LostFoundStatus = model.StatusClaimed
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}

	return helper.JsonUpdated(c, "Item claimed", dto.ToLostFoundResponse(&item))
}

// 🟢 PUT /api/lostfound/:id
func (ctrl *LostFoundController) UpdateLostFoundItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateLostFoundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.LostFoundModel
	if err := ctrl.DB.Where("lost_found_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch item")
	}

	if req.LostFoundItemType != nil {
		item.LostFoundItemType = *req.LostFoundItemType
	}
	if req.LostFoundDescription != nil {
		item.LostFoundDescription = *req.LostFoundDescription
	}
	if req.LostFoundLocation != nil {
		item.LostFoundLocation = *req.LostFoundLocation
	}
	if req.LostFoundDateTime != nil {
		item.LostFoundDateTime = *req.LostFoundDateTime
	}
	if req.LostFoundStatus != nil {
		item.LostFoundStatus = *req.LostFoundStatus
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}

	return helper.JsonUpdated(c, "Item updated", dto.ToLostFoundResponse(&item))
}

// 🛑 DELETE /api/lostfound/:id
func (ctrl *LostFoundController) DeleteLostFoundItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("lost_found_id = ?", id).Delete(&model.LostFoundModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
	}

	return helper.JsonDeleted(c, "Item deleted", nil)
}
