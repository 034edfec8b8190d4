package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/operations/parking/model"
)

// ================== REQUEST ==================
type CreateParkingRequest struct {
	ParkingTicketNo string     `json:"parking_ticket_no" validate:"required"`
	ParkingPlateNo  string     `json:"parking_plate_no" validate:"required"`
	ParkingType     string     `json:"parking_type" validate:"required,oneof=Car Motorcycle"`
	ParkingBaseRate float64    `json:"parking_base_rate" validate:"required,gt=0"`
	ParkingTimeIn   *time.Time `json:"parking_time_in"` // defaults to now
}

type UpdateParkingRequest struct {
	ParkingTicketNo *string  `json:"parking_ticket_no"`
	ParkingPlateNo  *string  `json:"parking_plate_no"`
	ParkingType     *string  `json:"parking_type" validate:"omitempty,oneof=Car Motorcycle"`
	ParkingBaseRate *float64 `json:"parking_base_rate" validate:"omitempty,gt=0"`
}

// ================== RESPONSE ==================
type ParkingResponse struct {
	ParkingID         uuid.UUID  `json:"parking_id"`
	ParkingTicketNo   string     `json:"parking_ticket_no"`
	ParkingPlateNo    string     `json:"parking_plate_no"`
	ParkingType       string     `json:"parking_type"`
	ParkingBaseRate   float64    `json:"parking_base_rate"`
	ParkingTimeIn     time.Time  `json:"parking_time_in"`
	ParkingTimeOut    *time.Time `json:"parking_time_out"`
	ParkingDuration   string     `json:"parking_duration"`
	ParkingFinalPrice float64    `json:"parking_final_price"`
	ParkingStatus     string     `json:"parking_status"`
	ParkingIsArchived bool       `json:"parking_is_archived"`
	ParkingCreatedAt  string     `json:"parking_created_at"`
}

// ================ CONVERSION =================
func (r *CreateParkingRequest) ToModel() *model.ParkingModel {
	timeIn := time.Now()
	if r.ParkingTimeIn != nil {
		timeIn = *r.ParkingTimeIn
	}
	return &model.ParkingModel{
		ParkingTicketNo: r.ParkingTicketNo,
		ParkingPlateNo:  r.ParkingPlateNo,
		ParkingType:     r.ParkingType,
		ParkingBaseRate: r.ParkingBaseRate,
		ParkingTimeIn:   timeIn,
		ParkingStatus:   model.StatusParked,
	}
}

func ToParkingResponse(m *model.ParkingModel) *ParkingResponse {
	return &ParkingResponse{
		ParkingID:         m.ParkingID,
		ParkingTicketNo:   m.ParkingTicketNo,
		ParkingPlateNo:    m.ParkingPlateNo,
		ParkingType:       m.ParkingType,
		ParkingBaseRate:   m.ParkingBaseRate,
		ParkingTimeIn:     m.ParkingTimeIn,
		ParkingTimeOut:    m.ParkingTimeOut,
		ParkingDuration:   m.ParkingDuration,
		ParkingFinalPrice: m.ParkingFinalPrice,
		ParkingStatus:     m.ParkingStatus,
		ParkingIsArchived: m.ParkingIsArchived,
		ParkingCreatedAt:  m.ParkingCreatedAt.Format(time.RFC3339),
	}
}

func ToParkingResponseList(models []model.ParkingModel) []ParkingResponse {
	result := make([]ParkingResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToParkingResponse(&models[i]))
	}
	return result
}
