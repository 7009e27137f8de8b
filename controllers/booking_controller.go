package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/utils"
)

type BookingController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, service *services.BookingService) BookingController {
	return BookingController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:              booking.ID,
		GuestName:       booking.GuestName,
		GuestEmail:      booking.GuestEmail,
		GuestPhone:      booking.GuestPhone,
		CheckInDate:     utils.FormatDate(booking.CheckInDate),
		CheckOutDate:    utils.FormatDate(booking.CheckOutDate),
		Adults:          booking.Adults,
		Children:        booking.Children,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		Room: dto.BookingRoomResponse{
			ID:         booking.Room.RoomId,
			RoomNumber: booking.Room.RoomNumber,
			RoomType: dto.BookingRoomTypeBrief{
				Name:  booking.Room.RoomType.Name,
				Price: booking.Room.RoomType.Price,
			},
		},
		CreatedAt: booking.CreatedAt,
	}
}

// GetBookings trả về toàn bộ booking, mới nhất trước
func (ctl BookingController) GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := ctl.DB.Preload("Room.RoomType").Order("created_at desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.Success(c, bookingResponses)
}

// CreateBooking tạo booking mới
// POST /bookings/create -> 201, hoặc 400/404/409 kèm {error}
func (ctl BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.Service.Create(&request)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	// Booking mới làm thay đổi cờ trạng thái phòng
	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Created(c, convertToBookingResponse(*booking))
}

// ChangeBookingStatus đổi trạng thái booking (hủy, hoàn thành)
func (ctl BookingController) ChangeBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var request dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.Service.ChangeStatus(uint(bookingID), request.Status)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookingCalendar trả về các booking giao với một tháng để vẽ lịch
// GET /bookings/calendar?month&year
func (ctl BookingController) GetBookingCalendar(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		response.BadRequest(c, "month và year là bắt buộc")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "month không hợp lệ")
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		response.BadRequest(c, "year không hợp lệ")
		return
	}

	bookings, err := ctl.Service.BookingsInMonth(time.Month(month), year)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.Success(c, bookingResponses)
}
