package services

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops/builders"
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/utils"
	"hotelops/validator"
)

// BookingService xử lý nghiệp vụ đặt phòng
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

// BookingServiceOptions gom các dependency của BookingService
type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: l,
	}
}

// Create tạo booking mới. Kiểm tra trùng lịch, tính giá và ghi sổ diễn ra
// trong cùng một transaction mức Serializable, khóa dòng phòng trên Postgres,
// nên hai request đặt trùng phòng trùng khoảng ngày chỉ có đúng một request thành công.
func (s *BookingService) Create(req *dto.CreateBookingRequest) (*models.Booking, error) {
	checkIn, checkOut, err := validator.ValidateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	// SQLite mặc định đã serializable, driver còn từ chối isolation khác default
	txOpts := &sql.TxOptions{}
	if s.db.Dialector.Name() == "postgres" {
		txOpts.Isolation = sql.LevelSerializable
	}

	var booking *models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		roomTx := tx
		// SQLite không hỗ trợ FOR UPDATE, transaction ở đó vốn đã tuần tự
		if tx.Dialector.Name() == "postgres" {
			roomTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room models.Room
		if err := roomTx.First(&room, req.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin phòng", err)
		}
		if err := tx.First(&room.RoomType, room.RoomTypeID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin loại phòng", err)
		}

		count, err := CountConflicts(tx, room.RoomId, checkIn, checkOut)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra trùng lịch", err)
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeBookingConflict, "Phòng không còn trống trong khoảng ngày đã chọn", nil)
		}

		nights := utils.NightsBetween(checkIn, checkOut)
		totalPrice := float64(nights) * room.RoomType.Price

		chargeRows, chargeTotal, err := s.applyCharges(tx, req.AdditionalCharges, nights, req.Adults+req.Children)
		if err != nil {
			return err
		}
		totalPrice += chargeTotal

		b := builders.NewBookingBuilder().
			WithRoom(room.RoomId).
			WithGuestInfo(req.GuestName, req.GuestEmail, req.GuestPhone).
			WithStay(checkIn, checkOut, req.Adults, req.Children).
			WithSpecialRequests(req.SpecialRequests).
			WithStatus(constants.BookingStatusConfirmed).
			WithTotalPrice(totalPrice).
			Build()

		if err := tx.Create(b).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo booking", err)
		}

		for i := range chargeRows {
			chargeRows[i].BookingID = b.ID
		}
		if len(chargeRows) > 0 {
			if err := tx.Create(&chargeRows).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu phụ thu", err)
			}
		}

		record := models.FinancialRecord{
			Type:        constants.RecordTypeIncome,
			Category:    constants.CategoryRoomBooking,
			Description: fmt.Sprintf("Đặt phòng cho %s - Phòng %s", req.GuestName, room.RoomNumber),
			Amount:      totalPrice,
			Date:        utils.Today(),
			ReferenceID: &b.ID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi sổ", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("room_id = ?", room.RoomId).
			Update("status", constants.RoomStatusOccupied).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái phòng", err)
		}

		room.Status = constants.RoomStatusOccupied
		b.Room = room
		b.Charges = chargeRows
		booking = b
		return nil
	}, txOpts)

	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		// Serialization failure giữa hai transaction cạnh tranh cũng là xung đột đặt phòng
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == "40001" {
			return nil, errors.NewAppError(errors.ErrCodeBookingConflict, "Phòng không còn trống trong khoảng ngày đã chọn", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo booking", err)
	}

	s.logger.Info("Đã tạo booking %d cho phòng %s, tổng giá %.0f", booking.ID, booking.Room.RoomNumber, booking.TotalPrice)
	return booking, nil
}

// applyCharges tính tiền các phụ thu đã chọn theo chargeType.
// ID không tồn tại hoặc phụ thu đã tắt bị từ chối thay vì lặng lẽ bỏ qua.
func (s *BookingService) applyCharges(tx *gorm.DB, chargeIDs []uint, nights, people int) ([]models.BookingCharge, float64, error) {
	if len(chargeIDs) == 0 {
		return nil, 0, nil
	}

	seen := make(map[uint]bool, len(chargeIDs))
	uniq := make([]uint, 0, len(chargeIDs))
	for _, id := range chargeIDs {
		if !seen[id] {
			seen[id] = true
			uniq = append(uniq, id)
		}
	}

	var charges []models.AdditionalCharge
	if err := tx.Where("id IN ? AND is_active = ?", uniq, true).Find(&charges).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phụ thu", err)
	}
	if len(charges) != len(uniq) {
		return nil, 0, errors.NewAppError(errors.ErrCodeChargeNotFound, "Phụ thu không tồn tại hoặc đã ngừng áp dụng", nil)
	}

	var rows []models.BookingCharge
	var total float64
	for _, charge := range charges {
		amount := charge.Price
		switch charge.ChargeType {
		case constants.ChargeTypePerNight:
			amount = charge.Price * float64(nights)
		case constants.ChargeTypePerPerson:
			amount = charge.Price * float64(people)
		}
		total += amount
		rows = append(rows, models.BookingCharge{
			AdditionalChargeID: charge.ID,
			Quantity:           1,
			Price:              charge.Price,
		})
	}
	return rows, total, nil
}

// ChangeStatus đổi trạng thái booking. Hủy hoặc hoàn thành sẽ tính lại
// cờ trạng thái phòng trong cùng transaction.
func (s *BookingService) ChangeStatus(bookingID uint, status int) (*models.Booking, error) {
	if status < constants.BookingStatusPending || status > constants.BookingStatusCancelled {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ", nil)
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Room.RoomType").First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin booking", err)
		}

		// Khôi phục booking đã hủy phải kiểm tra lại trùng lịch, vì khoảng ngày
		// này có thể đã được đặt lại cho booking khác sau khi hủy
		if booking.Status == constants.BookingStatusCancelled && status != constants.BookingStatusCancelled {
			var count int64
			err := ConflictingBookings(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate).
				Where("id <> ?", booking.ID).
				Count(&count).Error
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra trùng lịch", err)
			}
			if count > 0 {
				return errors.NewAppError(errors.ErrCodeBookingConflict, "Phòng không còn trống trong khoảng ngày đã chọn", nil)
			}
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", status).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật booking", err)
		}
		booking.Status = status

		if err := RecomputeRoomStatus(tx, booking.RoomID, utils.Today()); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể tính lại trạng thái phòng", err)
		}
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể đổi trạng thái booking", err)
	}

	s.logger.Info("Booking %d chuyển sang trạng thái %d", bookingID, status)
	return &booking, nil
}

// BookingsInMonth trả về các booking chưa hủy giao với một tháng, phục vụ lịch
func (s *BookingService) BookingsInMonth(month time.Month, year int) ([]models.Booking, error) {
	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var bookings []models.Booking
	err := s.db.Preload("Room.RoomType").
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", endDate, startDate).
		Order("check_in_date asc").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy booking theo tháng", err)
	}
	return bookings, nil
}
