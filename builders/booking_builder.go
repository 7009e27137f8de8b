package builders

import (
	"time"

	"hotelops/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(name, email, phone string) *BookingBuilder {
	b.booking.GuestName = name
	b.booking.GuestEmail = email
	b.booking.GuestPhone = phone
	return b
}

// WithStay thêm khoảng lưu trú và số khách
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time, adults, children int) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithSpecialRequests thêm yêu cầu đặc biệt
func (b *BookingBuilder) WithSpecialRequests(requests string) *BookingBuilder {
	b.booking.SpecialRequests = requests
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotalPrice thêm tổng giá
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build trả về booking đã dựng
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
