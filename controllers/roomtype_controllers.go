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
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/validator"
)

type RoomTypeController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomTypeController(db *gorm.DB, redisCli *redis.Client) RoomTypeController {
	return RoomTypeController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetAllRoomTypes trả về các loại phòng kèm danh sách phòng, xếp theo giá tăng dần
func (ctl RoomTypeController) GetAllRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType

	cached := false
	if ctl.Redis != nil {
		var err error
		cached, err = services.GetFromRedis(config.Ctx, ctl.Redis, services.CacheKeyRoomTypes, &roomTypes)
		if err != nil {
			log.Printf("Lỗi khi đọc cache loại phòng từ Redis: %v", err)
		}
	}

	if !cached {
		if err := ctl.DB.Preload("Rooms").Order("price asc").Find(&roomTypes).Error; err != nil {
			response.ServerError(c)
			return
		}

		if ctl.Redis != nil {
			if err := services.SetToRedis(config.Ctx, ctl.Redis, services.CacheKeyRoomTypes, roomTypes, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách loại phòng vào Redis: %v", err)
			}
		}
	}

	response.Success(c, roomTypes)
}

// CreateRoomType tạo loại phòng mới
func (ctl RoomTypeController) CreateRoomType(c *gin.Context) {
	var request dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomTypeRequest(&request); err != nil {
		response.FromAppError(c, err)
		return
	}

	roomType := models.RoomType{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Capacity:    request.Capacity,
		Amenities:   request.Amenities,
	}
	if err := ctl.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Created(c, roomType)
}

// UpdateRoomType cập nhật giá, sức chứa và tiện nghi của loại phòng
func (ctl RoomTypeController) UpdateRoomType(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	var request dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomTypeRequest(&request); err != nil {
		response.FromAppError(c, err)
		return
	}

	var roomType models.RoomType
	if err := ctl.DB.First(&roomType, typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy loại phòng")
			return
		}
		response.ServerError(c)
		return
	}

	roomType.Name = request.Name
	roomType.Description = request.Description
	roomType.Price = request.Price
	roomType.Capacity = request.Capacity
	roomType.Amenities = request.Amenities

	if err := ctl.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Success(c, roomType)
}

// DeleteRoomType xóa loại phòng chưa có phòng nào tham chiếu
func (ctl RoomTypeController) DeleteRoomType(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	var roomCount int64
	if err := ctl.DB.Model(&models.Room{}).Where("room_type_id = ?", typeID).Count(&roomCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if roomCount > 0 {
		response.Conflict(c, "Loại phòng đang được sử dụng, không thể xóa")
		return
	}

	result := ctl.DB.Delete(&models.RoomType{}, typeID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Không tìm thấy loại phòng")
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctl.Redis)
	response.Success(c, gin.H{"success": true})
}
