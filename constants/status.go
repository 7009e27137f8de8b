package constants

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Room status
// Status chỉ là cờ dẫn xuất, tính khả dụng thật luôn tính từ bookings
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Task status (bảo trì + dọn phòng)
const (
	TaskStatusPending    = 0
	TaskStatusInProgress = 1
	TaskStatusCompleted  = 2
	TaskStatusCancelled  = 3
	TaskStatusSkipped    = 4
)

// Charge type
const (
	ChargeTypePerNight  = "per_night"
	ChargeTypePerStay   = "per_stay"
	ChargeTypePerPerson = "per_person"
)

// Financial record type
const (
	RecordTypeIncome  = "income"
	RecordTypeExpense = "expense"
)

// Task priority
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Financial category mặc định cho doanh thu đặt phòng
const CategoryRoomBooking = "room_booking"
