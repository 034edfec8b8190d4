package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/operations/bus_trips/dto"
	"ibt_backend/internals/features/operations/bus_trips/model"
	helper "ibt_backend/internals/helpers"
)

type BusTripController struct {
	DB *gorm.DB
}

func NewBusTripController(db *gorm.DB) *BusTripController {
	return &BusTripController{DB: db}
}

// 🟢 GET /api/bustrips
func (ctrl *BusTripController) GetBusTrips(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.BusTripModel{})
	if company := c.Query("company"); company != "" {
		q = q.Where("bus_trip_company = ?", company)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("bus_trip_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("bus_trip_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trips")
	}

	var trips []model.BusTripModel
	if err := q.
		Order("bus_trip_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&trips).Error; err != nil {
		log.Printf("[ERROR] list bus trips: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch trips")
	}

	return helper.JsonList(c, dto.ToBusTripResponseList(trips), helper.BuildMeta(total, p))
}

// 🟢 POST /api/bustrips
func (ctrl *BusTripController) CreateBusTrip(c *fiber.Ctx) error {
	var req dto.CreateBusTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	trip := req.ToModel()
	if err := ctrl.DB.Create(trip).Error; err != nil {
		log.Printf("[ERROR] create bus trip: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create trip")
	}

	return helper.JsonCreated(c, "Trip created", dto.ToBusTripResponse(trip))
}

// 🟢 PUT /api/bustrips/:id/depart
// Marks the trip Paid, records the ticket reference and the actual departure time.
func (ctrl *BusTripController) DepartBusTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.DepartBusTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var trip model.BusTripModel
	if err := ctrl.DB.Where("bus_trip_id = ?", id).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch trip")
	}

	if trip.BusTripStatus == model.StatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Trip already departed")
	}

	trip.BusTripStatus = model.StatusPaid
	trip.BusTripTicketRefNo = req.BusTripTicketRefNo
	trip.BusTripDepartureTime = time.Now().Format("15:04")

	if err := ctrl.DB.Save(&trip).Error; err != nil {
		log.Printf("[ERROR] depart bus trip: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update trip")
	}

	return helper.JsonUpdated(c, "Trip departed", dto.ToBusTripResponse(&trip))
}

// 🟢 PUT /api/bustrips/:id
func (ctrl *BusTripController) UpdateBusTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.UpdateBusTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var trip model.BusTripModel
	if err := ctrl.DB.Where("bus_trip_id = ?", id).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch trip")
	}

	if req.BusTripTemplateNo != nil {
		trip.BusTripTemplateNo = *req.BusTripTemplateNo
	}
	if req.BusTripRoute != nil {
		trip.BusTripRoute = *req.BusTripRoute
	}
	if req.BusTripCompany != nil {
		trip.BusTripCompany = *req.BusTripCompany
	}
	if req.BusTripTime != nil {
		trip.BusTripTime = *req.BusTripTime
	}
	if req.BusTripDate != nil {
		trip.BusTripDate = *req.BusTripDate
	}

	if err := ctrl.DB.Save(&trip).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update trip")
	}

	return helper.JsonUpdated(c, "Trip updated", dto.ToBusTripResponse(&trip))
}

// 🛑 DELETE /api/bustrips/:id
func (ctrl *BusTripController) DeleteBusTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("bus_trip_id = ?", id).Delete(&model.BusTripModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete trip")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
	}

	return helper.JsonDeleted(c, "Trip deleted", nil)
}
