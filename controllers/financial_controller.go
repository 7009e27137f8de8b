package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/utils"
	"hotelops/validator"
)

type FinancialController struct {
	DB      *gorm.DB
	Service *services.FinancialService
}

func NewFinancialController(db *gorm.DB, service *services.FinancialService) FinancialController {
	return FinancialController{
		DB:      db,
		Service: service,
	}
}

// GetRecords trả về sổ cái, bản ghi mới nhất trước
func (ctl FinancialController) GetRecords(c *gin.Context) {
	var records []models.FinancialRecord
	if err := ctl.DB.Order("date desc").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, records)
}

// CreateRecord ghi thêm một dòng vào sổ cái. Sổ chỉ ghi thêm,
// không có endpoint sửa hay xóa.
func (ctl FinancialController) CreateRecord(c *gin.Context) {
	var request dto.FinancialRecordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := validator.ValidateFinancialRecord(&request)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	record := models.FinancialRecord{
		Type:        request.Type,
		Category:    request.Category,
		Description: request.Description,
		Amount:      request.Amount,
		Date:        date,
		ReferenceID: request.ReferenceID,
	}
	if err := ctl.DB.Create(&record).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, record)
}

// GetSummary tổng hợp thu chi phía server trong khoảng ngày bao đóng
// GET /financial/summary?startDate&endDate
func (ctl FinancialController) GetSummary(c *gin.Context) {
	var startDate, endDate *time.Time

	if v := c.Query("startDate"); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			response.BadRequest(c, "startDate không hợp lệ, dùng định dạng yyyy-MM-dd")
			return
		}
		startDate = &parsed
	}
	if v := c.Query("endDate"); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			response.BadRequest(c, "endDate không hợp lệ, dùng định dạng yyyy-MM-dd")
			return
		}
		endDate = &parsed
	}

	summary, err := ctl.Service.Summary(startDate, endDate)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, summary)
}
