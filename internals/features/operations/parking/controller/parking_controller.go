package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/operations/parking/dto"
	"ibt_backend/internals/features/operations/parking/model"
	"ibt_backend/internals/features/operations/parking/service"
	helper "ibt_backend/internals/helpers"
)

type ParkingController struct {
	DB *gorm.DB
}

func NewParkingController(db *gorm.DB) *ParkingController {
	return &ParkingController{DB: db}
}

// 🟢 GET /api/parking
// Archived tickets are hidden from the live table.
func (ctrl *ParkingController) GetParkingTickets(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.ParkingModel{}).Where("parking_is_archived = ?", false)
	if status := c.Query("status"); status != "" {
		q = q.Where("parking_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tickets")
	}

	var tickets []model.ParkingModel
	if err := q.
		Order("parking_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&tickets).Error; err != nil {
		log.Printf("[ERROR] list parking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tickets")
	}

	return helper.JsonList(c, dto.ToParkingResponseList(tickets), helper.BuildMeta(total, p))
}

// 🟢 POST /api/parking  (vehicle entry)
func (ctrl *ParkingController) CreateParking(c *fiber.Ctx) error {
	var req dto.CreateParkingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ticket := req.ToModel()
	if err := ctrl.DB.Create(ticket).Error; err != nil {
		log.Printf("[ERROR] create parking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ticket")
	}

	return helper.JsonCreated(c, "Ticket created", dto.ToParkingResponse(ticket))
}

// 🟢 PUT /api/parking/:id/depart
// Billing: elapsed time rounded up to whole hours, minimum 1 hour.
func (ctrl *ParkingController) DepartParking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var ticket model.ParkingModel
	if err := ctrl.DB.Where("parking_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ticket")
	}

	if ticket.ParkingStatus == model.StatusDeparted {
		return helper.JsonError(c, fiber.StatusConflict, "Ticket already departed")
	}

	timeOut := time.Now()
	hours := service.BilledHours(ticket.ParkingTimeIn, timeOut)

	ticket.ParkingTimeOut = &timeOut
	ticket.ParkingDuration = service.DurationLabel(hours)
	ticket.ParkingFinalPrice = service.FinalPrice(hours, ticket.ParkingBaseRate)
	ticket.ParkingStatus = model.StatusDeparted

	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		log.Printf("[ERROR] depart parking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ticket")
	}

	return helper.JsonUpdated(c, "Vehicle departed", dto.ToParkingResponse(&ticket))
}

// 🟢 PUT /api/parking/:id  (standard edit)
func (ctrl *ParkingController) UpdateParking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateParkingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ticket model.ParkingModel
	if err := ctrl.DB.Where("parking_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ticket")
	}

	if req.ParkingTicketNo != nil {
		ticket.ParkingTicketNo = *req.ParkingTicketNo
	}
	if req.ParkingPlateNo != nil {
		ticket.ParkingPlateNo = *req.ParkingPlateNo
	}
	if req.ParkingType != nil {
		ticket.ParkingType = *req.ParkingType
	}
	if req.ParkingBaseRate != nil {
		ticket.ParkingBaseRate = *req.ParkingBaseRate
	}

	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ticket")
	}

	return helper.JsonUpdated(c, "Ticket updated", dto.ToParkingResponse(&ticket))
}

// 🛑 DELETE /api/parking/:id
func (ctrl *ParkingController) DeleteParking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("parking_id = ?", id).Delete(&model.ParkingModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ticket")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ticket not found")
	}

	return helper.JsonDeleted(c, "Ticket deleted", nil)
}
