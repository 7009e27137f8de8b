package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/utils"
	"hotelops/validator"
)

type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) MaintenanceController {
	return MaintenanceController{DB: db}
}

// GetTasks trả về công việc bảo trì, lọc theo status/assignedTo/categoryId
// và khoảng ngày lên lịch
func (ctl MaintenanceController) GetTasks(c *gin.Context) {
	tx := ctl.DB.Model(&models.MaintenanceTask{}).
		Preload("Category").
		Preload("Staff").
		Preload("Room")

	if v := c.Query("status"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		tx = tx.Where("status = ?", status)
	}
	if v := c.Query("assignedTo"); v != "" {
		tx = tx.Where("assigned_to = ?", v)
	}
	if v := c.Query("categoryId"); v != "" {
		tx = tx.Where("category_id = ?", v)
	}
	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			response.BadRequest(c, "startDate không hợp lệ")
			return
		}
		end, err := utils.ParseDate(endStr)
		if err != nil {
			response.BadRequest(c, "endDate không hợp lệ")
			return
		}
		tx = tx.Where("scheduled_date >= ? AND scheduled_date <= ?", start, end)
	}

	var tasks []models.MaintenanceTask
	if err := tx.Order("status asc").Order("scheduled_date asc").Find(&tasks).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, tasks)
}

// CreateTask tạo công việc bảo trì mới ở trạng thái pending
func (ctl MaintenanceController) CreateTask(c *gin.Context) {
	var request dto.MaintenanceTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if request.Title == "" {
		response.BadRequest(c, "Tiêu đề không được để trống")
		return
	}
	scheduledDate, err := utils.ParseDate(request.ScheduledDate)
	if err != nil {
		response.BadRequest(c, "Ngày lên lịch không hợp lệ")
		return
	}

	task := models.MaintenanceTask{
		Title:          request.Title,
		Description:    request.Description,
		CategoryID:     request.CategoryID,
		Priority:       request.Priority,
		AssignedTo:     request.AssignedTo,
		RoomID:         request.RoomID,
		ScheduledDate:  scheduledDate,
		EstimatedHours: request.EstimatedHours,
		Notes:          request.Notes,
		Status:         constants.TaskStatusPending,
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if request.DueDate != "" {
		dueDate, err := utils.ParseDate(request.DueDate)
		if err != nil {
			response.BadRequest(c, "Hạn chót không hợp lệ")
			return
		}
		task.DueDate = &dueDate
	}

	if err := ctl.DB.Create(&task).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.DB.Preload("Category").Preload("Staff").Preload("Room").First(&task, task.ID)
	response.Created(c, task)
}

// GetTaskDetail trả về chi tiết một công việc bảo trì
func (ctl MaintenanceController) GetTaskDetail(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID công việc không hợp lệ")
		return
	}

	var task models.MaintenanceTask
	if err := ctl.DB.Preload("Category").Preload("Staff").Preload("Room").First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy công việc bảo trì")
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, task)
}

// UpdateTask cập nhật công việc bảo trì, kèm chuyển trạng thái.
// Vào completed thì set CompletedAt = now, rời completed thì xóa.
// Mọi chuyển trạng thái đều được chấp nhận, không ép thứ tự.
func (ctl MaintenanceController) UpdateTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID công việc không hợp lệ")
		return
	}

	var request dto.MaintenanceTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var task models.MaintenanceTask
	if err := ctl.DB.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy công việc bảo trì")
			return
		}
		response.ServerError(c)
		return
	}

	if request.Title != "" {
		task.Title = request.Title
	}
	if request.Description != "" {
		task.Description = request.Description
	}
	if request.CategoryID != 0 {
		task.CategoryID = request.CategoryID
	}
	if request.Priority != "" {
		task.Priority = request.Priority
	}
	task.AssignedTo = request.AssignedTo
	task.RoomID = request.RoomID
	if request.ScheduledDate != "" {
		scheduledDate, err := utils.ParseDate(request.ScheduledDate)
		if err != nil {
			response.BadRequest(c, "Ngày lên lịch không hợp lệ")
			return
		}
		task.ScheduledDate = scheduledDate
	}
	if request.DueDate != "" {
		dueDate, err := utils.ParseDate(request.DueDate)
		if err != nil {
			response.BadRequest(c, "Hạn chót không hợp lệ")
			return
		}
		task.DueDate = &dueDate
	}
	if request.EstimatedHours != nil {
		task.EstimatedHours = request.EstimatedHours
	}
	if request.ActualHours != nil {
		task.ActualHours = request.ActualHours
	}
	if request.Notes != "" {
		task.Notes = request.Notes
	}

	if request.Status != nil {
		if err := validator.ValidateMaintenanceStatus(*request.Status); err != nil {
			response.FromAppError(c, err)
			return
		}
		if *request.Status == constants.TaskStatusCompleted && task.Status != constants.TaskStatusCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else if *request.Status != constants.TaskStatusCompleted {
			task.CompletedAt = nil
		}
		task.Status = *request.Status
	}

	if err := ctl.DB.Save(&task).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.DB.Preload("Category").Preload("Staff").Preload("Room").First(&task, task.ID)
	response.Success(c, task)
}

// DeleteTask xóa công việc bảo trì
func (ctl MaintenanceController) DeleteTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID công việc không hợp lệ")
		return
	}

	result := ctl.DB.Delete(&models.MaintenanceTask{}, taskID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Không tìm thấy công việc bảo trì")
		return
	}
	response.Success(c, gin.H{"message": "Đã xóa công việc bảo trì"})
}

// GetCategories trả về các danh mục bảo trì đang dùng
func (ctl MaintenanceController) GetCategories(c *gin.Context) {
	var categories []models.MaintenanceCategory
	if err := ctl.DB.Where("is_active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, categories)
}

// CreateCategory tạo danh mục bảo trì mới
func (ctl MaintenanceController) CreateCategory(c *gin.Context) {
	var request dto.MaintenanceCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	category := models.MaintenanceCategory{
		Name:        request.Name,
		Description: request.Description,
		Color:       request.Color,
		IsActive:    true,
	}
	if category.Color == "" {
		category.Color = "#3B82F6"
	}

	if err := ctl.DB.Create(&category).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, category)
}
