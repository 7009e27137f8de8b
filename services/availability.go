package services

import (
	"time"

	"gorm.io/gorm"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
)

// Overlaps kiểm tra hai khoảng nửa mở [aIn, aOut) và [bIn, bOut) có giao nhau không.
// Đêm trả phòng không tính, nên trả phòng ngày X và nhận phòng ngày X không đụng nhau.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// ConflictingBookings trả về query các booking chưa hủy của một phòng
// giao với khoảng [checkIn, checkOut)
func ConflictingBookings(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) *gorm.DB {
	return db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
}

// CountConflicts đếm số booking xung đột với khoảng ngày trên một phòng
func CountConflicts(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := ConflictingBookings(db, roomID, checkIn, checkOut).Count(&count).Error
	return count, err
}

// FindAvailableRooms tìm các phòng không có booking chưa hủy nào giao với
// khoảng ngày yêu cầu. Lọc sức chứa đẩy thẳng vào query qua JOIN room_types,
// nên phòng có loại phòng đã bị xóa sẽ không xuất hiện trong kết quả.
// Phòng đang bảo trì bị loại; cờ occupied không được dùng để lọc vì tính
// khả dụng luôn tính từ bookings.
func FindAvailableRooms(db *gorm.DB, q dto.RoomSearchQuery) ([]models.Room, error) {
	booked := db.Model(&models.Booking{}).
		Select("room_id").
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", q.CheckOut, q.CheckIn)

	tx := db.Model(&models.Room{}).
		Preload("RoomType").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.room_id NOT IN (?)", booked).
		Where("rooms.status <> ?", constants.RoomStatusMaintenance).
		Where("room_types.capacity >= ?", q.Adults+q.Children).
		Order("rooms.room_number asc")

	if q.RoomTypeID != 0 {
		tx = tx.Where("rooms.room_type_id = ?", q.RoomTypeID)
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// RecomputeRoomStatus tính lại cờ trạng thái phòng từ các booking còn hiệu lực.
// Phòng bảo trì giữ nguyên, phần còn lại là occupied nếu có booking đã xác nhận
// phủ ngày hôm nay, ngược lại là available.
func RecomputeRoomStatus(db *gorm.DB, roomID uint, today time.Time) error {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		return err
	}
	if room.Status == constants.RoomStatusMaintenance {
		return nil
	}

	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status = ?", constants.BookingStatusConfirmed).
		Where("check_in_date <= ? AND check_out_date > ?", today, today).
		Count(&count).Error
	if err != nil {
		return err
	}

	status := constants.RoomStatusAvailable
	if count > 0 {
		status = constants.RoomStatusOccupied
	}
	if status == room.Status {
		return nil
	}
	return db.Model(&models.Room{}).Where("room_id = ?", roomID).Update("status", status).Error
}
