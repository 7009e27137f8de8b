package validator

import (
	"time"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/errors"
	"hotelops/utils"
)

// ValidateBookingRequest validate dữ liệu đặt phòng, trả về ngày đã chuẩn hóa.
// Email/điện thoại chỉ kiểm tra có mặt, không kiểm tra định dạng.
func ValidateBookingRequest(req *dto.CreateBookingRequest) (checkIn, checkOut time.Time, err error) {
	if req.GuestName == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if req.GuestEmail == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Email khách không được để trống", nil)
	}
	if req.GuestPhone == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if req.RoomID == 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if req.Adults < 1 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeValidation, "Số người lớn phải ít nhất là 1", nil)
	}
	if req.Children < 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}

	checkIn, err = utils.ParseDate(req.CheckInDate)
	if err != nil {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err = utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}

	// So sánh date-only, bỏ qua giờ trong ngày
	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if checkIn.Before(utils.Today()) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng không được ở quá khứ", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateFinancialRecord validate dữ liệu ghi sổ
func ValidateFinancialRecord(req *dto.FinancialRecordRequest) (time.Time, error) {
	if req.Type != constants.RecordTypeIncome && req.Type != constants.RecordTypeExpense {
		return time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Loại bản ghi phải là income hoặc expense", nil)
	}
	if req.Category == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Danh mục không được để trống", nil)
	}
	if req.Amount < 0 {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày không hợp lệ", err)
	}
	return date, nil
}

// ValidateChargeRequest validate dữ liệu phụ thu
func ValidateChargeRequest(req *dto.ChargeRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phụ thu không được để trống", nil)
	}
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	switch req.ChargeType {
	case constants.ChargeTypePerNight, constants.ChargeTypePerStay, constants.ChargeTypePerPerson:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeValidation, "chargeType phải là per_night, per_stay hoặc per_person", nil)
}

// ValidateRoomTypeRequest validate dữ liệu loại phòng
func ValidateRoomTypeRequest(req *dto.RoomTypeRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	if req.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải ít nhất là 1", nil)
	}
	return nil
}

// ValidateMaintenanceStatus kiểm tra trạng thái công việc bảo trì.
// Lối thoát phụ của bảo trì là cancelled, không dùng skipped.
// Mọi chuyển trạng thái hợp lệ đều được chấp nhận, không ép thứ tự pending -> in_progress.
func ValidateMaintenanceStatus(status int) error {
	switch status {
	case constants.TaskStatusPending, constants.TaskStatusInProgress,
		constants.TaskStatusCompleted, constants.TaskStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", nil)
}

// ValidateHousekeepingStatus kiểm tra trạng thái phân công dọn phòng.
// Lối thoát phụ của dọn phòng là skipped, không dùng cancelled.
func ValidateHousekeepingStatus(status int) error {
	switch status {
	case constants.TaskStatusPending, constants.TaskStatusInProgress,
		constants.TaskStatusCompleted, constants.TaskStatusSkipped:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", nil)
}
