package models

import (
	"fmt"
	"time"

	"hotelops/constants"
)

type Room struct {
	RoomId     uint      `json:"id" gorm:"primaryKey"`
	RoomNumber string    `json:"roomNumber" gorm:"uniqueIndex;size:10;not null"`
	Floor      int       `json:"floor"`
	RoomTypeID uint      `json:"roomTypeId"`
	RoomType   RoomType  `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Status     int       `json:"status" gorm:"default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("trạng thái không hợp lệ: %d, phải từ 1 đến 3", r.Status)
	}
	return nil
}
