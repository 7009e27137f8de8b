package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/utils"
)

type RoomController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) RoomController {
	return RoomController{
		DB:    db,
		Redis: redisCli,
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.RoomId,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Status:     room.Status,
		RoomType: dto.RoomTypeResponse{
			ID:          room.RoomType.ID,
			Name:        room.RoomType.Name,
			Description: room.RoomType.Description,
			Price:       room.RoomType.Price,
			Capacity:    room.RoomType.Capacity,
			Amenities:   room.RoomType.Amenities,
		},
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// GetAllRooms trả về toàn bộ phòng kèm loại phòng, có cache Redis
func (ctl RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	cached := false
	if ctl.Redis != nil {
		var err error
		cached, err = services.GetFromRedis(config.Ctx, ctl.Redis, services.CacheKeyRooms, &rooms)
		if err != nil {
			log.Printf("Lỗi khi đọc cache phòng từ Redis: %v", err)
		}
	}

	if !cached {
		if err := ctl.DB.Preload("RoomType").Order("room_number asc").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if ctl.Redis != nil {
			if err := services.SetToRedis(config.Ctx, ctl.Redis, services.CacheKeyRooms, rooms, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
			}
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

// CreateRoom tạo phòng mới, trạng thái mặc định là available
func (ctl RoomController) CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := ctl.DB.First(&roomType, request.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy loại phòng")
			return
		}
		response.ServerError(c)
		return
	}

	room := models.Room{
		RoomNumber: request.RoomNumber,
		Floor:      request.Floor,
		RoomTypeID: request.RoomTypeID,
		Status:     constants.RoomStatusAvailable,
	}
	if err := ctl.DB.Create(&room).Error; err != nil {
		response.Conflict(c, "Số phòng đã tồn tại")
		return
	}
	room.RoomType = roomType

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Created(c, convertToRoomResponse(room))
}

// GetRoomDetail trả về chi tiết một phòng
func (ctl RoomController) GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := ctl.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy phòng")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// ChangeRoomStatus đổi cờ trạng thái phòng (ví dụ đưa vào bảo trì)
func (ctl RoomController) ChangeRoomStatus(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var request dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := ctl.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy phòng")
			return
		}
		response.ServerError(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Model(&models.Room{}).Where("room_id = ?", room.RoomId).Update("status", room.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Success(c, convertToRoomResponse(room))
}

// SearchRooms tìm phòng trống theo khoảng ngày, số khách và loại phòng
// GET /rooms/search?checkIn&checkOut&adults&children&roomTypeId
func (ctl RoomController) SearchRooms(c *gin.Context) {
	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "checkIn và checkOut là bắt buộc")
		return
	}

	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ, dùng định dạng yyyy-MM-dd")
		return
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ, dùng định dạng yyyy-MM-dd")
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	adults := 2
	children := 0
	if v := c.Query("adults"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			adults = parsed
		}
	}
	if v := c.Query("children"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			children = parsed
		}
	}

	var roomTypeID uint
	if v := c.Query("roomTypeId"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "roomTypeId không hợp lệ")
			return
		}
		roomTypeID = uint(parsed)
	}

	rooms, err := services.FindAvailableRooms(ctl.DB, dto.RoomSearchQuery{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     adults,
		Children:   children,
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		log.Printf("Lỗi khi tìm phòng trống: %v", err)
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}
	response.Success(c, roomResponses)
}

// GetAvailableRooms là biến thể cũ của tìm phòng trống, không lọc sức chứa
// GET /rooms/available?checkInDate&checkOutDate
func (ctl RoomController) GetAvailableRooms(c *gin.Context) {
	checkInStr := c.Query("checkInDate")
	checkOutStr := c.Query("checkOutDate")
	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "checkInDate và checkOutDate là bắt buộc")
		return
	}

	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ, dùng định dạng yyyy-MM-dd")
		return
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ, dùng định dạng yyyy-MM-dd")
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	rooms, err := services.FindAvailableRooms(ctl.DB, dto.RoomSearchQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   1,
	})
	if err != nil {
		log.Printf("Lỗi khi tìm phòng trống: %v", err)
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}
	response.Success(c, roomResponses)
}
