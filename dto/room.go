package dto

import (
	"encoding/json"
	"time"
)

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	Floor      int    `json:"floor"`
}

// RoomStatusRequest là DTO cho request cập nhật trạng thái phòng
type RoomStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// RoomTypeResponse là DTO cho loại phòng nhúng trong phòng
type RoomTypeResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Amenities   json.RawMessage `json:"amenities"`
}

// RoomResponse là DTO cho một phòng kèm loại phòng
type RoomResponse struct {
	ID         uint             `json:"id"`
	RoomNumber string           `json:"roomNumber"`
	Floor      int              `json:"floor"`
	Status     int              `json:"status"`
	RoomType   RoomTypeResponse `json:"roomType"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// RoomSearchQuery gom các tham số tìm phòng trống
type RoomSearchQuery struct {
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	RoomTypeID uint
}
