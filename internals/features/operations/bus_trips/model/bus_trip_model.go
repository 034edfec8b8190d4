package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

type BusTripModel struct {
	BusTripID            uuid.UUID `gorm:"column:bus_trip_id;type:uuid;primaryKey" json:"bus_trip_id"`
	BusTripTemplateNo    string    `gorm:"column:bus_trip_template_no;type:varchar(50);not null" json:"bus_trip_template_no"`
	BusTripRoute         string    `gorm:"column:bus_trip_route;type:varchar(120);not null" json:"bus_trip_route"`
	BusTripCompany       string    `gorm:"column:bus_trip_company;type:varchar(120);not null" json:"bus_trip_company"`
	BusTripTime          string    `gorm:"column:bus_trip_time;type:varchar(8)" json:"bus_trip_time"`                     // scheduled "HH:MM"
	BusTripDepartureTime string    `gorm:"column:bus_trip_departure_time;type:varchar(8)" json:"bus_trip_departure_time"` // actual "HH:MM"
	BusTripDate          string    `gorm:"column:bus_trip_date;type:varchar(10)" json:"bus_trip_date"`                    // "YYYY-MM-DD"
	BusTripStatus        string    `gorm:"column:bus_trip_status;type:varchar(20);not null;default:Pending" json:"bus_trip_status"`
	BusTripTicketRefNo   string    `gorm:"column:bus_trip_ticket_ref_no;type:varchar(50)" json:"bus_trip_ticket_ref_no"`
	BusTripCreatedAt     time.Time `gorm:"column:bus_trip_created_at;autoCreateTime" json:"bus_trip_created_at"`
	BusTripUpdatedAt     time.Time `gorm:"column:bus_trip_updated_at;autoUpdateTime" json:"bus_trip_updated_at"`
}

func (BusTripModel) TableName() string {
	return "bus_trips"
}

func (m *BusTripModel) BeforeCreate(tx *gorm.DB) error {
	if m.BusTripID == uuid.Nil {
		m.BusTripID = uuid.New()
	}
	return nil
}
