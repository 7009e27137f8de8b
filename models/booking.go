package models

import (
	"time"
)

// Booking giữ ngày theo ngữ nghĩa date-only, khoảng nửa mở [CheckInDate, CheckOutDate)
type Booking struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	RoomID          uint            `json:"roomId" gorm:"index"`
	Room            Room            `json:"room" gorm:"foreignKey:RoomID"`
	GuestName       string          `json:"guestName"`
	GuestEmail      string          `json:"guestEmail"`
	GuestPhone      string          `json:"guestPhone"`
	CheckInDate     time.Time       `json:"checkInDate" gorm:"index"`
	CheckOutDate    time.Time       `json:"checkOutDate" gorm:"index"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          int             `json:"status"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Charges         []BookingCharge `json:"charges,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookingCharge lưu snapshot giá phụ thu tại thời điểm đặt
type BookingCharge struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	BookingID          uint             `json:"bookingId" gorm:"index"`
	AdditionalChargeID uint             `json:"additionalChargeId"`
	AdditionalCharge   AdditionalCharge `json:"additionalCharge" gorm:"foreignKey:AdditionalChargeID"`
	Quantity           int              `json:"quantity" gorm:"default:1"`
	Price              float64          `json:"price"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}
