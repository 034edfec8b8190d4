package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/operations/bus_trips/model"
)

// ================== REQUEST ==================
type CreateBusTripRequest struct {
	BusTripTemplateNo string `json:"bus_trip_template_no" validate:"required"`
	BusTripRoute      string `json:"bus_trip_route" validate:"required"`
	BusTripCompany    string `json:"bus_trip_company" validate:"required"`
	BusTripTime       string `json:"bus_trip_time"`
	BusTripDate       string `json:"bus_trip_date"`
}

type UpdateBusTripRequest struct {
	BusTripTemplateNo *string `json:"bus_trip_template_no"`
	BusTripRoute      *string `json:"bus_trip_route"`
	BusTripCompany    *string `json:"bus_trip_company"`
	BusTripTime       *string `json:"bus_trip_time"`
	BusTripDate       *string `json:"bus_trip_date"`
}

type DepartBusTripRequest struct {
	BusTripTicketRefNo string `json:"bus_trip_ticket_ref_no" validate:"required"`
}

// ================== RESPONSE ==================
type BusTripResponse struct {
	BusTripID            uuid.UUID `json:"bus_trip_id"`
	BusTripTemplateNo    string    `json:"bus_trip_template_no"`
	BusTripRoute         string    `json:"bus_trip_route"`
	BusTripCompany       string    `json:"bus_trip_company"`
	BusTripTime          string    `json:"bus_trip_time"`
	BusTripDepartureTime string    `json:"bus_trip_departure_time"`
	BusTripDate          string    `json:"bus_trip_date"`
	BusTripStatus        string    `json:"bus_trip_status"`
	BusTripTicketRefNo   string    `json:"bus_trip_ticket_ref_no"`
	BusTripCreatedAt     string    `json:"bus_trip_created_at"`
}

// ================ CONVERSION =================
func (r *CreateBusTripRequest) ToModel() *model.BusTripModel {
	date := r.BusTripDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return &model.BusTripModel{
		BusTripTemplateNo: r.BusTripTemplateNo,
		BusTripRoute:      r.BusTripRoute,
		BusTripCompany:    r.BusTripCompany,
		BusTripTime:       r.BusTripTime,
		BusTripDate:       date,
		BusTripStatus:     model.StatusPending,
	}
}

func ToBusTripResponse(m *model.BusTripModel) *BusTripResponse {
	return &BusTripResponse{
		BusTripID:            m.BusTripID,
		BusTripTemplateNo:    m.BusTripTemplateNo,
		BusTripRoute:         m.BusTripRoute,
		BusTripCompany:       m.BusTripCompany,
		BusTripTime:          m.BusTripTime,
		BusTripDepartureTime: m.BusTripDepartureTime,
		BusTripDate:          m.BusTripDate,
		BusTripStatus:        m.BusTripStatus,
		BusTripTicketRefNo:   m.BusTripTicketRefNo,
		BusTripCreatedAt:     m.BusTripCreatedAt.Format(time.RFC3339),
	}
}

func ToBusTripResponseList(models []model.BusTripModel) []BusTripResponse {
	result := make([]BusTripResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToBusTripResponse(&models[i]))
	}
	return result
}
