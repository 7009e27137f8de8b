package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/errors"
	"hotelops/models"
	"hotelops/utils"
)

func validRequest(roomID uint) *dto.CreateBookingRequest {
	checkIn := utils.Today().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)
	return &dto.CreateBookingRequest{
		GuestName:    "Trần Thị B",
		GuestEmail:   "b@example.com",
		GuestPhone:   "0911111111",
		RoomID:       roomID,
		CheckInDate:  utils.FormatDate(checkIn),
		CheckOutDate: utils.FormatDate(checkOut),
		Adults:       2,
		Children:     0,
	}
}

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "101", 2, 100000, constants.RoomStatusAvailable)

	booking, err := svc.Create(validRequest(room.RoomId))
	require.NoError(t, err)

	// 2 đêm x 100000
	assert.Equal(t, float64(200000), booking.TotalPrice)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, room.RoomId, booking.RoomID)

	// Sổ cái có đúng một dòng income gắn với booking
	var record models.FinancialRecord
	require.NoError(t, db.Where("reference_id = ?", booking.ID).First(&record).Error)
	assert.Equal(t, constants.RecordTypeIncome, record.Type)
	assert.Equal(t, constants.CategoryRoomBooking, record.Category)
	assert.Equal(t, float64(200000), record.Amount)

	// Phòng chuyển sang occupied
	var got models.Room
	require.NoError(t, db.First(&got, room.RoomId).Error)
	assert.Equal(t, constants.RoomStatusOccupied, got.Status)
}

func TestCreateBookingConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "102", 2, 100000, constants.RoomStatusAvailable)

	req := validRequest(room.RoomId)
	_, err := svc.Create(req)
	require.NoError(t, err)

	var before int64
	db.Model(&models.FinancialRecord{}).Count(&before)

	// Trùng y khoảng ngày với booking đã có
	_, err = svc.Create(req)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeBookingConflict, appErr.Code)

	// Thất bại thì không đẻ thêm bản ghi nào
	var after int64
	db.Model(&models.FinancialRecord{}).Count(&after)
	assert.Equal(t, before, after)

	var bookings int64
	db.Model(&models.Booking{}).Count(&bookings)
	assert.Equal(t, int64(1), bookings)
}

func TestCreateBookingAfterCancellation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "103", 2, 100000, constants.RoomStatusAvailable)

	req := validRequest(room.RoomId)
	first, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.ChangeStatus(first.ID, constants.BookingStatusCancelled)
	require.NoError(t, err)

	// Booking đã hủy không giữ phòng nữa
	second, err := svc.Create(req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestChangeStatusReviveConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "104", 2, 100000, constants.RoomStatusAvailable)

	req := validRequest(room.RoomId)
	first, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.ChangeStatus(first.ID, constants.BookingStatusCancelled)
	require.NoError(t, err)

	// Khoảng ngày đã được đặt lại cho booking khác
	_, err = svc.Create(req)
	require.NoError(t, err)

	// Khôi phục booking cũ phải bị chặn, nếu không hai booking đã xác nhận
	// sẽ cùng chiếm một phòng một khoảng ngày
	_, err = svc.ChangeStatus(first.ID, constants.BookingStatusConfirmed)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeBookingConflict, appErr.Code)

	var stillCancelled models.Booking
	require.NoError(t, db.First(&stillCancelled, first.ID).Error)
	assert.Equal(t, constants.BookingStatusCancelled, stillCancelled.Status)
}

func TestChangeStatusReviveWithoutConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "105", 2, 100000, constants.RoomStatusAvailable)

	first, err := svc.Create(validRequest(room.RoomId))
	require.NoError(t, err)

	_, err = svc.ChangeStatus(first.ID, constants.BookingStatusCancelled)
	require.NoError(t, err)

	// Không ai chiếm khoảng ngày thì khôi phục được
	revived, err := svc.ChangeStatus(first.ID, constants.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, revived.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "104", 2, 100000, constants.RoomStatusAvailable)

	cases := []struct {
		name   string
		mutate func(r *dto.CreateBookingRequest)
	}{
		{"thiếu tên khách", func(r *dto.CreateBookingRequest) { r.GuestName = "" }},
		{"thiếu email", func(r *dto.CreateBookingRequest) { r.GuestEmail = "" }},
		{"thiếu điện thoại", func(r *dto.CreateBookingRequest) { r.GuestPhone = "" }},
		{"ngày sai định dạng", func(r *dto.CreateBookingRequest) { r.CheckInDate = "10/04/2026" }},
		{"trả phòng trước nhận phòng", func(r *dto.CreateBookingRequest) {
			r.CheckInDate, r.CheckOutDate = r.CheckOutDate, r.CheckInDate
		}},
		{"nhận và trả cùng ngày", func(r *dto.CreateBookingRequest) { r.CheckOutDate = r.CheckInDate }},
		{"nhận phòng trong quá khứ", func(r *dto.CreateBookingRequest) {
			r.CheckInDate = utils.FormatDate(utils.Today().AddDate(0, 0, -1))
		}},
		{"không có người lớn", func(r *dto.CreateBookingRequest) { r.Adults = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(room.RoomId)
			tc.mutate(req)

			_, err := svc.Create(req)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.NotEqual(t, errors.ErrCodeBookingConflict, appErr.Code)
		})
	}

	// Không có request lỗi nào được ghi vào DB
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.Create(validRequest(9999))
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRoomNotFound, appErr.Code)
}

func TestCreateBookingWithCharges(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "105", 4, 100000, constants.RoomStatusAvailable)

	breakfast := models.AdditionalCharge{
		Name: "Ăn sáng", Price: 50000, ChargeType: constants.ChargeTypePerPerson, IsActive: true,
	}
	parking := models.AdditionalCharge{
		Name: "Gửi xe", Price: 20000, ChargeType: constants.ChargeTypePerNight, IsActive: true,
	}
	spa := models.AdditionalCharge{
		Name: "Spa", Price: 300000, ChargeType: constants.ChargeTypePerStay, IsActive: true,
	}
	require.NoError(t, db.Create(&breakfast).Error)
	require.NoError(t, db.Create(&parking).Error)
	require.NoError(t, db.Create(&spa).Error)

	req := validRequest(room.RoomId)
	req.Adults = 2
	req.Children = 1
	req.AdditionalCharges = []uint{breakfast.ID, parking.ID, spa.ID}

	booking, err := svc.Create(req)
	require.NoError(t, err)

	// 2 đêm x 100000 + ăn sáng 50000 x 3 người + gửi xe 20000 x 2 đêm + spa 300000
	assert.Equal(t, float64(200000+150000+40000+300000), booking.TotalPrice)
	assert.Len(t, booking.Charges, 3)

	var record models.FinancialRecord
	require.NoError(t, db.Where("reference_id = ?", booking.ID).First(&record).Error)
	assert.Equal(t, booking.TotalPrice, record.Amount)
}

func TestCreateBookingUnknownCharge(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "106", 2, 100000, constants.RoomStatusAvailable)

	inactive := models.AdditionalCharge{
		Name: "Đã ngừng", Price: 10000, ChargeType: constants.ChargeTypePerStay,
	}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	for _, ids := range [][]uint{{12345}, {inactive.ID}} {
		req := validRequest(room.RoomId)
		req.AdditionalCharges = ids

		_, err := svc.Create(req)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeChargeNotFound, appErr.Code)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "107", 2, 100000, constants.RoomStatusAvailable)

	// Pool một connection nên hai transaction buộc phải chạy tuần tự,
	// transaction sau thấy booking của transaction trước và bị từ chối
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Create(validRequest(room.RoomId))
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeBookingConflict, appErr.Code)
		conflicted++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	var bookings int64
	db.Model(&models.Booking{}).Where("status <> ?", constants.BookingStatusCancelled).Count(&bookings)
	assert.Equal(t, int64(1), bookings)
}

func TestChangeStatusRecomputesRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "108", 2, 100000, constants.RoomStatusAvailable)

	req := validRequest(room.RoomId)
	booking, err := svc.Create(req)
	require.NoError(t, err)

	var got models.Room
	require.NoError(t, db.First(&got, room.RoomId).Error)
	assert.Equal(t, constants.RoomStatusOccupied, got.Status)

	_, err = svc.ChangeStatus(booking.ID, constants.BookingStatusCancelled)
	require.NoError(t, err)

	require.NoError(t, db.First(&got, room.RoomId).Error)
	assert.Equal(t, constants.RoomStatusAvailable, got.Status)
}

func TestChangeStatusInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.ChangeStatus(1, 99)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidStatus, appErr.Code)
}

func TestBookingsInMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: db})
	room := seedRoom(t, db, "109", 2, 100000, constants.RoomStatusAvailable)

	// Giao với tháng 4: nằm trọn, vắt qua đầu tháng, vắt qua cuối tháng
	seedBooking(t, db, room.RoomId, date(2026, 4, 10), date(2026, 4, 12), constants.BookingStatusConfirmed)
	seedBooking(t, db, room.RoomId, date(2026, 3, 29), date(2026, 4, 2), constants.BookingStatusConfirmed)
	seedBooking(t, db, room.RoomId, date(2026, 4, 29), date(2026, 5, 3), constants.BookingStatusConfirmed)
	// Không giao hoặc đã hủy
	seedBooking(t, db, room.RoomId, date(2026, 3, 1), date(2026, 3, 5), constants.BookingStatusConfirmed)
	seedBooking(t, db, room.RoomId, date(2026, 4, 15), date(2026, 4, 17), constants.BookingStatusCancelled)

	bookings, err := svc.BookingsInMonth(4, 2026)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
}
