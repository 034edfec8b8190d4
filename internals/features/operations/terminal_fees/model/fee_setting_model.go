package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeSettingModel holds the configurable base prices. A single row is kept;
// the gate prices used to live in the browser only.
type FeeSettingModel struct {
	FeeSettingID         uuid.UUID `gorm:"column:fee_setting_id;type:uuid;primaryKey" json:"fee_setting_id"`
	FeeSettingRegular    float64   `gorm:"column:fee_setting_regular;not null;default:15" json:"fee_setting_regular"`
	FeeSettingDiscounted float64   `gorm:"column:fee_setting_discounted;not null;default:12" json:"fee_setting_discounted"`
	FeeSettingUpdatedBy  string    `gorm:"column:fee_setting_updated_by;type:varchar(255)" json:"fee_setting_updated_by"`
	FeeSettingUpdatedAt  time.Time `gorm:"column:fee_setting_updated_at;autoUpdateTime" json:"fee_setting_updated_at"`
}

func (FeeSettingModel) TableName() string {
	return "fee_settings"
}

func (m *FeeSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeSettingID == uuid.Nil {
		m.FeeSettingID = uuid.New()
	}
	return nil
}

// PriceFor resolves the base price for a passenger type. Students and
// Senior-PWD passengers pay the discounted price.
func (m *FeeSettingModel) PriceFor(passengerType string) float64 {
	switch passengerType {
	case PassengerStudent, PassengerSeniorPWD:
		return m.FeeSettingDiscounted
	default:
		return m.FeeSettingRegular
	}
}
