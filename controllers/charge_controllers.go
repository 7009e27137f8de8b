package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/validator"
)

type ChargeController struct {
	DB *gorm.DB
}

func NewChargeController(db *gorm.DB) ChargeController {
	return ChargeController{DB: db}
}

// GetAllCharges trả về toàn bộ phụ thu, xếp theo tên
func (ctl ChargeController) GetAllCharges(c *gin.Context) {
	var charges []models.AdditionalCharge
	if err := ctl.DB.Order("name asc").Find(&charges).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, charges)
}

// CreateCharge tạo phụ thu mới
func (ctl ChargeController) CreateCharge(c *gin.Context) {
	var request dto.ChargeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateChargeRequest(&request); err != nil {
		response.FromAppError(c, err)
		return
	}

	charge := models.AdditionalCharge{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		ChargeType:  request.ChargeType,
		IsActive:    true,
	}
	if request.IsActive != nil {
		charge.IsActive = *request.IsActive
	}

	if err := ctl.DB.Create(&charge).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, charge)
}

// UpdateCharge cập nhật phụ thu, kể cả cờ áp dụng
func (ctl ChargeController) UpdateCharge(c *gin.Context) {
	chargeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phụ thu không hợp lệ")
		return
	}

	var request dto.ChargeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateChargeRequest(&request); err != nil {
		response.FromAppError(c, err)
		return
	}

	var charge models.AdditionalCharge
	if err := ctl.DB.First(&charge, chargeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy phụ thu")
			return
		}
		response.ServerError(c)
		return
	}

	charge.Name = request.Name
	charge.Description = request.Description
	charge.Price = request.Price
	charge.ChargeType = request.ChargeType
	if request.IsActive != nil {
		charge.IsActive = *request.IsActive
	}

	if err := ctl.DB.Save(&charge).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, charge)
}

// DeleteCharge xóa phụ thu
func (ctl ChargeController) DeleteCharge(c *gin.Context) {
	chargeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phụ thu không hợp lệ")
		return
	}

	result := ctl.DB.Delete(&models.AdditionalCharge{}, chargeID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Không tìm thấy phụ thu")
		return
	}
	response.Success(c, gin.H{"success": true})
}
