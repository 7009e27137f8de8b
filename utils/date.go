package utils

import (
	"time"
)

// DateLayout là định dạng ngày dùng trên toàn bộ API
const DateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày yyyy-MM-dd, chấp nhận cả timestamp đầy đủ,
// kết quả luôn đưa về ngữ nghĩa date-only (UTC, 0h)
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDate(t), nil
}

// TruncateToDate bỏ phần giờ, giữ lại ngày theo UTC
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today trả về ngày hiện tại theo ngữ nghĩa date-only
func Today() time.Time {
	return TruncateToDate(time.Now())
}

// NightsBetween đếm số đêm giữa hai ngày date-only
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// FormatDate xuất ngày theo yyyy-MM-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
