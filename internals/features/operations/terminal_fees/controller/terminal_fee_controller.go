package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/operations/terminal_fees/dto"
	"ibt_backend/internals/features/operations/terminal_fees/model"
	helper "ibt_backend/internals/helpers"
	helperAuth "ibt_backend/internals/helpers/auth"
)

type TerminalFeeController struct {
	DB *gorm.DB
}

func NewTerminalFeeController(db *gorm.DB) *TerminalFeeController {
	return &TerminalFeeController{DB: db}
}

// currentSettings returns the settings row, creating the defaults on first use.
func (ctrl *TerminalFeeController) currentSettings() (*model.FeeSettingModel, error) {
	var settings model.FeeSettingModel
	err := ctrl.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.FeeSettingModel{
			FeeSettingRegular:    15,
			FeeSettingDiscounted: 12,
		}
		if err := ctrl.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// 🟢 GET /api/terminal-fees
func (ctrl *TerminalFeeController) GetTerminalFees(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TerminalFeeModel{})
	if pt := c.Query("passenger_type"); pt != "" {
		q = q.Where("terminal_fee_passenger_type = ?", pt)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("terminal_fee_date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fees")
	}

	var fees []model.TerminalFeeModel
	if err := q.
		Order("terminal_fee_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&fees).Error; err != nil {
		log.Printf("[ERROR] list terminal fees: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	return helper.JsonList(c, dto.ToTerminalFeeResponseList(fees), helper.BuildMeta(total, p))
}

// 🟢 POST /api/terminal-fees
// Price falls back to the configured base price for the passenger type.
func (ctrl *TerminalFeeController) CreateTerminalFee(c *fiber.Ctx) error {
	var req dto.CreateTerminalFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fee := req.ToModel()
	if fee.TerminalFeePrice <= 0 {
		settings, err := ctrl.currentSettings()
		if err != nil {
			log.Printf("[ERROR] load fee settings: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load base prices")
		}
		fee.TerminalFeePrice = settings.PriceFor(fee.TerminalFeePassengerType)
	}

	if err := ctrl.DB.Create(fee).Error; err != nil {
		log.Printf("[ERROR] create terminal fee: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee")
	}

	return helper.JsonCreated(c, "Fee created", dto.ToTerminalFeeResponse(fee))
}

// 🟢 PUT /api/terminal-fees/:id
func (ctrl *TerminalFeeController) UpdateTerminalFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateTerminalFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var fee model.TerminalFeeModel
	if err := ctrl.DB.Where("terminal_fee_id = ?", id).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if req.TerminalFeeTicketNo != nil {
		fee.TerminalFeeTicketNo = *req.TerminalFeeTicketNo
	}
	if req.TerminalFeePassengerType != nil {
		fee.TerminalFeePassengerType = *req.TerminalFeePassengerType
	}
	if req.TerminalFeePrice != nil {
		fee.TerminalFeePrice = *req.TerminalFeePrice
	}

	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}

	return helper.JsonUpdated(c, "Fee updated", dto.ToTerminalFeeResponse(&fee))
}

// 🛑 DELETE /api/terminal-fees/:id
func (ctrl *TerminalFeeController) DeleteTerminalFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("terminal_fee_id = ?", id).Delete(&model.TerminalFeeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
	}

	return helper.JsonDeleted(c, "Fee deleted", nil)
}

// 🟢 GET /api/terminal-fees/settings
func (ctrl *TerminalFeeController) GetFeeSettings(c *fiber.Ctx) error {
	settings, err := ctrl.currentSettings()
	if err != nil {
		log.Printf("[ERROR] load fee settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load base prices")
	}
	return helper.JsonOK(c, "ok", settings)
}

// 🟢 PUT /api/terminal-fees/settings
func (ctrl *TerminalFeeController) UpdateFeeSettings(c *fiber.Ctx) error {
	var req dto.UpdateFeeSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings, err := ctrl.currentSettings()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load base prices")
	}

	settings.FeeSettingRegular = req.FeeSettingRegular
	settings.FeeSettingDiscounted = req.FeeSettingDiscounted
	settings.FeeSettingUpdatedBy = helperAuth.GetEmailFromToken(c)

	if err := ctrl.DB.Save(settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update base prices")
	}

	return helper.JsonUpdated(c, "Base prices updated", settings)
}
