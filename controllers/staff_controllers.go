package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) StaffController {
	return StaffController{DB: db}
}

// GetAllStaff trả về các nhân viên đang làm việc, xếp theo tên
func (ctl StaffController) GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := ctl.DB.Where("is_active = ?", true).Order("name asc").Find(&staff).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, staff)
}

// CreateStaff tạo nhân viên mới
func (ctl StaffController) CreateStaff(c *gin.Context) {
	var request dto.StaffRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hireDate, err := utils.ParseDate(request.HireDate)
	if err != nil {
		response.BadRequest(c, "Ngày vào làm không hợp lệ")
		return
	}

	staff := models.Staff{
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.Phone,
		Position:   request.Position,
		Department: request.Department,
		HireDate:   hireDate,
		IsActive:   true,
	}
	if err := ctl.DB.Create(&staff).Error; err != nil {
		response.Conflict(c, "Email nhân viên đã tồn tại")
		return
	}
	response.Created(c, staff)
}
