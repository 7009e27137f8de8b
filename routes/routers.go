package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelops/controllers"
	"hotelops/middleware"
	"hotelops/services"
	"hotelops/services/logger"
)

// SetupRoutes đăng ký toàn bộ route của API dưới prefix /api
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel).WithPrefix("booking"),
	})
	financialService := services.NewFinancialService(db)

	roomController := controllers.NewRoomController(db, redisCli)
	roomTypeController := controllers.NewRoomTypeController(db, redisCli)
	bookingController := controllers.NewBookingController(db, redisCli, bookingService)
	chargeController := controllers.NewChargeController(db)
	financialController := controllers.NewFinancialController(db, financialService)
	maintenanceController := controllers.NewMaintenanceController(db)
	housekeepingController := controllers.NewHousekeepingController(db)
	staffController := controllers.NewStaffController(db)

	// cache in-memory cho các GET ít thay đổi (danh mục, nhân viên)
	catalogCache := cache.New(5*time.Minute, 10*time.Minute)

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(50, 100))

	api.GET("/health", controllers.HealthCheck)

	api.GET("/room-types", roomTypeController.GetAllRoomTypes)
	api.POST("/room-types", roomTypeController.CreateRoomType)
	api.PUT("/room-types/:id", roomTypeController.UpdateRoomType)
	api.DELETE("/room-types/:id", roomTypeController.DeleteRoomType)

	api.GET("/rooms", roomController.GetAllRooms)
	api.POST("/rooms", roomController.CreateRoom)
	api.GET("/rooms/search", roomController.SearchRooms)
	api.GET("/rooms/available", roomController.GetAvailableRooms)
	api.GET("/rooms/:id", roomController.GetRoomDetail)
	api.PUT("/rooms/:id/status", roomController.ChangeRoomStatus)

	api.GET("/bookings", bookingController.GetBookings)
	api.POST("/bookings", bookingController.CreateBooking)
	api.POST("/bookings/create", bookingController.CreateBooking)
	api.PUT("/bookings/:id/status", bookingController.ChangeBookingStatus)
	api.GET("/bookings/calendar", bookingController.GetBookingCalendar)

	api.GET("/additional-charges", chargeController.GetAllCharges)
	api.POST("/additional-charges", chargeController.CreateCharge)
	api.PUT("/additional-charges/:id", chargeController.UpdateCharge)
	api.DELETE("/additional-charges/:id", chargeController.DeleteCharge)

	api.GET("/financial-records", financialController.GetRecords)
	api.POST("/financial-records", financialController.CreateRecord)
	api.GET("/financial-records/summary", financialController.GetSummary)
	api.GET("/financial", financialController.GetRecords)
	api.POST("/financial", financialController.CreateRecord)
	api.GET("/financial/summary", financialController.GetSummary)

	api.GET("/maintenance-tasks", maintenanceController.GetTasks)
	api.POST("/maintenance-tasks", maintenanceController.CreateTask)
	api.GET("/maintenance-tasks/:id", maintenanceController.GetTaskDetail)
	api.PUT("/maintenance-tasks/:id", maintenanceController.UpdateTask)
	api.DELETE("/maintenance-tasks/:id", maintenanceController.DeleteTask)
	api.GET("/maintenance-categories", middleware.CacheGet(catalogCache, 5*time.Minute), maintenanceController.GetCategories)
	api.POST("/maintenance-categories", maintenanceController.CreateCategory)

	api.GET("/housekeeping-tasks", middleware.CacheGet(catalogCache, 5*time.Minute), housekeepingController.GetTasks)
	api.POST("/housekeeping-tasks", housekeepingController.CreateTask)
	api.GET("/housekeeping-assignments", housekeepingController.GetAssignments)
	api.POST("/housekeeping-assignments", housekeepingController.CreateAssignment)
	api.PUT("/housekeeping-assignments/:id", housekeepingController.UpdateAssignment)
	api.DELETE("/housekeeping-assignments/:id", housekeepingController.DeleteAssignment)

	api.GET("/staff", middleware.CacheGet(catalogCache, 5*time.Minute), staffController.GetAllStaff)
	api.POST("/staff", staffController.CreateStaff)
}
