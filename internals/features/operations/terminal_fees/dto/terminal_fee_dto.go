package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/operations/terminal_fees/model"
)

// ================== REQUEST ==================
type CreateTerminalFeeRequest struct {
	TerminalFeeTicketNo      string  `json:"terminal_fee_ticket_no" validate:"required"`
	TerminalFeePassengerType string  `json:"terminal_fee_passenger_type" validate:"required,oneof=Regular Student Senior-PWD"`
	TerminalFeePrice         float64 `json:"terminal_fee_price" validate:"omitempty,gt=0"` // derived from settings when 0
	TerminalFeeDate          string  `json:"terminal_fee_date"`
	TerminalFeeTime          string  `json:"terminal_fee_time"`
}

type UpdateTerminalFeeRequest struct {
	TerminalFeeTicketNo      *string  `json:"terminal_fee_ticket_no"`
	TerminalFeePassengerType *string  `json:"terminal_fee_passenger_type" validate:"omitempty,oneof=Regular Student Senior-PWD"`
	TerminalFeePrice         *float64 `json:"terminal_fee_price" validate:"omitempty,gt=0"`
}

type UpdateFeeSettingRequest struct {
	FeeSettingRegular    float64 `json:"fee_setting_regular" validate:"required,gt=0"`
	FeeSettingDiscounted float64 `json:"fee_setting_discounted" validate:"required,gt=0"`
}

// ================== RESPONSE ==================
type TerminalFeeResponse struct {
	TerminalFeeID            uuid.UUID `json:"terminal_fee_id"`
	TerminalFeeTicketNo      string    `json:"terminal_fee_ticket_no"`
	TerminalFeePassengerType string    `json:"terminal_fee_passenger_type"`
	TerminalFeePrice         float64   `json:"terminal_fee_price"`
	TerminalFeeDate          string    `json:"terminal_fee_date"`
	TerminalFeeTime          string    `json:"terminal_fee_time"`
	TerminalFeeCreatedAt     string    `json:"terminal_fee_created_at"`
}

// ================ CONVERSION =================
func (r *CreateTerminalFeeRequest) ToModel() *model.TerminalFeeModel {
	now := time.Now()
	date := r.TerminalFeeDate
	if date == "" {
		date = now.Format("2006-01-02")
	}
	timeOfDay := r.TerminalFeeTime
	if timeOfDay == "" {
		timeOfDay = now.Format("15:04")
	}
	return &model.TerminalFeeModel{
		TerminalFeeTicketNo:      r.TerminalFeeTicketNo,
		TerminalFeePassengerType: r.TerminalFeePassengerType,
		TerminalFeePrice:         r.TerminalFeePrice,
		TerminalFeeDate:          date,
		TerminalFeeTime:          timeOfDay,
	}
}

func ToTerminalFeeResponse(m *model.TerminalFeeModel) *TerminalFeeResponse {
	return &TerminalFeeResponse{
		TerminalFeeID:            m.TerminalFeeID,
		TerminalFeeTicketNo:      m.TerminalFeeTicketNo,
		TerminalFeePassengerType: m.TerminalFeePassengerType,
		TerminalFeePrice:         m.TerminalFeePrice,
		TerminalFeeDate:          m.TerminalFeeDate,
		TerminalFeeTime:          m.TerminalFeeTime,
		TerminalFeeCreatedAt:     m.TerminalFeeCreatedAt.Format(time.RFC3339),
	}
}

func ToTerminalFeeResponseList(models []model.TerminalFeeModel) []TerminalFeeResponse {
	result := make([]TerminalFeeResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToTerminalFeeResponse(&models[i]))
	}
	return result
}
