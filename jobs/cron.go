package jobs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hotelops/constants"
	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

// CompleteExpiredBookings chuyển booking đã confirmed qua completed khi
// đã tới ngày trả phòng, rồi tính lại trạng thái phòng tương ứng.
func CompleteExpiredBookings(db *gorm.DB) error {
	today := utils.Today()

	var bookings []models.Booking
	if err := db.Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, today).
		Find(&bookings).Error; err != nil {
		return err
	}

	for _, b := range bookings {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Booking{}).Where("id = ?", b.ID).
				Update("status", constants.BookingStatusCompleted).Error; err != nil {
				return err
			}
			return services.RecomputeRoomStatus(tx, b.RoomID, today)
		})
		if err != nil {
			log.Printf("Lỗi khi hoàn tất booking %d: %v", b.ID, err)
		}
	}

	return nil
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, redisCli *redis.Client) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang chạy job hoàn tất booking hết hạn lúc: %v", utils.Today())
		if err := CompleteExpiredBookings(db); err != nil {
			log.Printf("Lỗi khi hoàn tất booking hết hạn: %v", err)
			return
		}
		services.InvalidateRoomCaches(context.Background(), redisCli)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
