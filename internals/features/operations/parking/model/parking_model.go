package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusParked   = "Parked"
	StatusDeparted = "Departed"

	VehicleCar        = "Car"
	VehicleMotorcycle = "Motorcycle"
)

type ParkingModel struct {
	ParkingID         uuid.UUID  `gorm:"column:parking_id;type:uuid;primaryKey" json:"parking_id"`
	ParkingTicketNo   string     `gorm:"column:parking_ticket_no;type:varchar(50);not null" json:"parking_ticket_no"`
	ParkingPlateNo    string     `gorm:"column:parking_plate_no;type:varchar(20);not null" json:"parking_plate_no"`
	ParkingType       string     `gorm:"column:parking_type;type:varchar(20);not null" json:"parking_type"` // Car | Motorcycle
	ParkingBaseRate   float64    `gorm:"column:parking_base_rate;not null" json:"parking_base_rate"`
	ParkingTimeIn     time.Time  `gorm:"column:parking_time_in;not null" json:"parking_time_in"`
	ParkingTimeOut    *time.Time `gorm:"column:parking_time_out" json:"parking_time_out"`
	ParkingDuration   string     `gorm:"column:parking_duration;type:varchar(30)" json:"parking_duration"` // "N hour(s)"
	ParkingFinalPrice float64    `gorm:"column:parking_final_price;not null;default:0" json:"parking_final_price"`
	ParkingStatus     string     `gorm:"column:parking_status;type:varchar(20);not null;default:Parked" json:"parking_status"`
	ParkingIsArchived bool       `gorm:"column:parking_is_archived;not null;default:false" json:"parking_is_archived"`
	ParkingCreatedAt  time.Time  `gorm:"column:parking_created_at;autoCreateTime" json:"parking_created_at"`
	ParkingUpdatedAt  time.Time  `gorm:"column:parking_updated_at;autoUpdateTime" json:"parking_updated_at"`
}

func (ParkingModel) TableName() string {
	return "parking_tickets"
}

func (m *ParkingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParkingID == uuid.Nil {
		m.ParkingID = uuid.New()
	}
	return nil
}
