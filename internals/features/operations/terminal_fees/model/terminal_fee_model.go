package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PassengerRegular   = "Regular"
	PassengerStudent   = "Student"
	PassengerSeniorPWD = "Senior-PWD"
)

type TerminalFeeModel struct {
	TerminalFeeID            uuid.UUID `gorm:"column:terminal_fee_id;type:uuid;primaryKey" json:"terminal_fee_id"`
	TerminalFeeTicketNo      string    `gorm:"column:terminal_fee_ticket_no;type:varchar(50);not null" json:"terminal_fee_ticket_no"`
	TerminalFeePassengerType string    `gorm:"column:terminal_fee_passenger_type;type:varchar(20);not null" json:"terminal_fee_passenger_type"`
	TerminalFeePrice         float64   `gorm:"column:terminal_fee_price;not null" json:"terminal_fee_price"`
	TerminalFeeDate          string    `gorm:"column:terminal_fee_date;type:varchar(10)" json:"terminal_fee_date"` // "YYYY-MM-DD"
	TerminalFeeTime          string    `gorm:"column:terminal_fee_time;type:varchar(8)" json:"terminal_fee_time"`  // "HH:MM"
	TerminalFeeCreatedAt     time.Time `gorm:"column:terminal_fee_created_at;autoCreateTime" json:"terminal_fee_created_at"`
	TerminalFeeUpdatedAt     time.Time `gorm:"column:terminal_fee_updated_at;autoUpdateTime" json:"terminal_fee_updated_at"`
}

func (TerminalFeeModel) TableName() string {
	return "terminal_fees"
}

func (m *TerminalFeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.TerminalFeeID == uuid.Nil {
		m.TerminalFeeID = uuid.New()
	}
	return nil
}
