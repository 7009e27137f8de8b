package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	GuestName         string `json:"guestName"`
	GuestEmail        string `json:"guestEmail"`
	GuestPhone        string `json:"guestPhone"`
	RoomID            uint   `json:"roomId"`
	CheckInDate       string `json:"checkInDate"`
	CheckOutDate      string `json:"checkOutDate"`
	Adults            int    `json:"adults"`
	Children          int    `json:"children"`
	SpecialRequests   string `json:"specialRequests"`
	AdditionalCharges []uint `json:"additionalCharges"`
}

// BookingStatusRequest là DTO cho request đổi trạng thái booking
type BookingStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// BookingRoomResponse là thông tin phòng nhúng trong booking
type BookingRoomResponse struct {
	ID         uint                 `json:"id"`
	RoomNumber string               `json:"roomNumber"`
	RoomType   BookingRoomTypeBrief `json:"roomType"`
}

type BookingRoomTypeBrief struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingResponse là DTO trả về cho một booking
type BookingResponse struct {
	ID              uint                `json:"id"`
	GuestName       string              `json:"guestName"`
	GuestEmail      string              `json:"guestEmail"`
	GuestPhone      string              `json:"guestPhone"`
	CheckInDate     string              `json:"checkInDate"`
	CheckOutDate    string              `json:"checkOutDate"`
	Adults          int                 `json:"adults"`
	Children        int                 `json:"children"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          int                 `json:"status"`
	SpecialRequests string              `json:"specialRequests,omitempty"`
	Room            BookingRoomResponse `json:"room"`
	CreatedAt       time.Time           `json:"createdAt"`
}
