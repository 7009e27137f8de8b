package dto

import "encoding/json"

// RoomTypeRequest là DTO cho request tạo/cập nhật loại phòng
type RoomTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required"`
	Amenities   json.RawMessage `json:"amenities"`
}
