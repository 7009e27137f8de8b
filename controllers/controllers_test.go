package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotelops/config"
	"hotelops/models"
	"hotelops/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEnv dựng DB sqlite in-memory và router với đầy đủ route, không Redis
func newTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
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

	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: db})
	financialService := services.NewFinancialService(db)

	roomController := NewRoomController(db, nil)
	roomTypeController := NewRoomTypeController(db, nil)
	bookingController := NewBookingController(db, nil, bookingService)
	chargeController := NewChargeController(db)
	financialController := NewFinancialController(db, financialService)
	maintenanceController := NewMaintenanceController(db)
	housekeepingController := NewHousekeepingController(db)
	staffController := NewStaffController(db)

	router := gin.New()
	api := router.Group("/api")

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
	api.PUT("/bookings/:id/status", bookingController.ChangeBookingStatus)
	api.GET("/bookings/calendar", bookingController.GetBookingCalendar)

	api.GET("/additional-charges", chargeController.GetAllCharges)
	api.POST("/additional-charges", chargeController.CreateCharge)

	api.GET("/financial-records", financialController.GetRecords)
	api.POST("/financial-records", financialController.CreateRecord)
	api.GET("/financial-records/summary", financialController.GetSummary)

	api.GET("/maintenance-tasks", maintenanceController.GetTasks)
	api.POST("/maintenance-tasks", maintenanceController.CreateTask)
	api.GET("/maintenance-tasks/:id", maintenanceController.GetTaskDetail)
	api.PUT("/maintenance-tasks/:id", maintenanceController.UpdateTask)
	api.DELETE("/maintenance-tasks/:id", maintenanceController.DeleteTask)
	api.GET("/maintenance-categories", maintenanceController.GetCategories)
	api.POST("/maintenance-categories", maintenanceController.CreateCategory)

	api.GET("/housekeeping-tasks", housekeepingController.GetTasks)
	api.POST("/housekeeping-tasks", housekeepingController.CreateTask)
	api.GET("/housekeeping-assignments", housekeepingController.GetAssignments)
	api.POST("/housekeeping-assignments", housekeepingController.CreateAssignment)
	api.PUT("/housekeeping-assignments/:id", housekeepingController.UpdateAssignment)
	api.DELETE("/housekeeping-assignments/:id", housekeepingController.DeleteAssignment)

	api.GET("/staff", staffController.GetAllStaff)
	api.POST("/staff", staffController.CreateStaff)

	return db, router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTestRoom(t *testing.T, db *gorm.DB, roomNumber string, capacity int, price float64) models.Room {
	t.Helper()

	roomType := models.RoomType{
		Name:     "Loại " + roomNumber,
		Price:    price,
		Capacity: capacity,
	}
	require.NoError(t, db.Create(&roomType).Error)

	room := models.Room{
		RoomNumber: roomNumber,
		Floor:      1,
		RoomTypeID: roomType.ID,
		Status:     1,
	}
	require.NoError(t, db.Create(&room).Error)
	room.RoomType = roomType
	return room
}

func seedTestStaff(t *testing.T, db *gorm.DB, name, email string) models.Staff {
	t.Helper()
	staff := models.Staff{
		Name:     name,
		Email:    email,
		HireDate: testDate(2025, 1, 1),
		IsActive: true,
	}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}
