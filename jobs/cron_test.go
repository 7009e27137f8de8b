package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/models"
	"hotelops/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.MigrateDB(db))
	return db
}

func TestCompleteExpiredBookings(t *testing.T) {
	db := newTestDB(t)

	roomType := models.RoomType{Name: "Standard", Price: 100000, Capacity: 2}
	require.NoError(t, db.Create(&roomType).Error)
	room := models.Room{RoomNumber: "101", RoomTypeID: roomType.ID, Status: constants.RoomStatusOccupied}
	require.NoError(t, db.Create(&room).Error)

	today := utils.Today()

	newBooking := func(checkIn, checkOut time.Time, status int) models.Booking {
		b := models.Booking{
			RoomID:       room.RoomId,
			GuestName:    "Khách",
			GuestEmail:   "k@example.com",
			GuestPhone:   "0900000000",
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Adults:       2,
			Status:       status,
		}
		require.NoError(t, db.Create(&b).Error)
		return b
	}

	expired := newBooking(today.AddDate(0, 0, -3), today.AddDate(0, 0, -1), constants.BookingStatusConfirmed)
	endsToday := newBooking(today.AddDate(0, 0, -2), today, constants.BookingStatusConfirmed)
	ongoing := newBooking(today.AddDate(0, 0, -1), today.AddDate(0, 0, 2), constants.BookingStatusConfirmed)
	cancelled := newBooking(today.AddDate(0, 0, -3), today.AddDate(0, 0, -1), constants.BookingStatusCancelled)

	require.NoError(t, CompleteExpiredBookings(db))

	var got models.Booking
	require.NoError(t, db.First(&got, expired.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, got.Status)

	// Trả phòng hôm nay cũng coi là đã kết thúc, đêm trả phòng không tính
	require.NoError(t, db.First(&got, endsToday.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, got.Status)

	require.NoError(t, db.First(&got, ongoing.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, got.Status)

	require.NoError(t, db.First(&got, cancelled.ID).Error)
	assert.Equal(t, constants.BookingStatusCancelled, got.Status)

	// Còn booking đang ở nên phòng vẫn occupied
	var gotRoom models.Room
	require.NoError(t, db.First(&gotRoom, room.RoomId).Error)
	assert.Equal(t, constants.RoomStatusOccupied, gotRoom.Status)
}

func TestCompleteExpiredBookingsFreesRoom(t *testing.T) {
	db := newTestDB(t)

	roomType := models.RoomType{Name: "Standard", Price: 100000, Capacity: 2}
	require.NoError(t, db.Create(&roomType).Error)
	room := models.Room{RoomNumber: "102", RoomTypeID: roomType.ID, Status: constants.RoomStatusOccupied}
	require.NoError(t, db.Create(&room).Error)

	today := utils.Today()
	require.NoError(t, db.Create(&models.Booking{
		RoomID:       room.RoomId,
		GuestName:    "Khách",
		GuestEmail:   "k@example.com",
		GuestPhone:   "0900000000",
		CheckInDate:  today.AddDate(0, 0, -2),
		CheckOutDate: today,
		Adults:       2,
		Status:       constants.BookingStatusConfirmed,
	}).Error)

	require.NoError(t, CompleteExpiredBookings(db))

	var gotRoom models.Room
	require.NoError(t, db.First(&gotRoom, room.RoomId).Error)
	assert.Equal(t, constants.RoomStatusAvailable, gotRoom.Status)
}
