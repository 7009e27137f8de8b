package models

import (
	"fmt"
	"time"

	"hotelops/constants"
)

type AdditionalCharge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ChargeType  string    `json:"chargeType" gorm:"size:20"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *AdditionalCharge) ValidateChargeType() error {
	switch a.ChargeType {
	case constants.ChargeTypePerNight, constants.ChargeTypePerStay, constants.ChargeTypePerPerson:
		return nil
	}
	return fmt.Errorf("chargeType không hợp lệ: %s", a.ChargeType)
}
