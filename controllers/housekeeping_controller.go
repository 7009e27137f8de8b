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

type HousekeepingController struct {
	DB *gorm.DB
}

func NewHousekeepingController(db *gorm.DB) HousekeepingController {
	return HousekeepingController{DB: db}
}

// GetTasks trả về các mẫu công việc dọn phòng đang dùng
func (ctl HousekeepingController) GetTasks(c *gin.Context) {
	var tasks []models.HousekeepingTask
	if err := ctl.DB.Where("is_active = ?", true).Order("category asc").Find(&tasks).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, tasks)
}

// CreateTask tạo mẫu công việc dọn phòng mới
func (ctl HousekeepingController) CreateTask(c *gin.Context) {
	var request dto.HousekeepingTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	task := models.HousekeepingTask{
		Name:          request.Name,
		Description:   request.Description,
		Category:      request.Category,
		EstimatedTime: request.EstimatedTime,
		IsActive:      true,
	}
	if task.EstimatedTime <= 0 {
		task.EstimatedTime = 30
	}

	if err := ctl.DB.Create(&task).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, task)
}

// GetAssignments trả về phân công dọn phòng, lọc theo ngày/nhân viên/trạng thái
func (ctl HousekeepingController) GetAssignments(c *gin.Context) {
	tx := ctl.DB.Model(&models.HousekeepingAssignment{}).
		Preload("Task").
		Preload("Staff").
		Preload("Room")

	if v := c.Query("date"); v != "" {
		date, err := utils.ParseDate(v)
		if err != nil {
			response.BadRequest(c, "date không hợp lệ")
			return
		}
		tx = tx.Where("scheduled_date >= ? AND scheduled_date < ?", date, date.AddDate(0, 0, 1))
	}
	if v := c.Query("assignedTo"); v != "" {
		tx = tx.Where("assigned_to = ?", v)
	}
	if v := c.Query("status"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		tx = tx.Where("status = ?", status)
	}

	var assignments []models.HousekeepingAssignment
	if err := tx.Order("status asc").Order("scheduled_date asc").Find(&assignments).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, assignments)
}

// CreateAssignment phân công một mẫu công việc cho nhân viên
func (ctl HousekeepingController) CreateAssignment(c *gin.Context) {
	var request dto.HousekeepingAssignmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	scheduledDate, err := utils.ParseDate(request.ScheduledDate)
	if err != nil {
		response.BadRequest(c, "Ngày lên lịch không hợp lệ")
		return
	}

	var task models.HousekeepingTask
	if err := ctl.DB.First(&task, request.TaskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy mẫu công việc")
			return
		}
		response.ServerError(c)
		return
	}

	assignment := models.HousekeepingAssignment{
		TaskID:        request.TaskID,
		AssignedTo:    request.AssignedTo,
		RoomID:        request.RoomID,
		ScheduledDate: scheduledDate,
		Priority:      request.Priority,
		Notes:         request.Notes,
		Status:        constants.TaskStatusPending,
	}
	if assignment.Priority == "" {
		assignment.Priority = constants.PriorityMedium
	}

	if err := ctl.DB.Create(&assignment).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.DB.Preload("Task").Preload("Staff").Preload("Room").First(&assignment, assignment.ID)
	response.Created(c, assignment)
}

// UpdateAssignment đổi trạng thái phân công dọn phòng.
// Vào completed thì set CompletedAt = now, rời completed thì xóa.
func (ctl HousekeepingController) UpdateAssignment(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phân công không hợp lệ")
		return
	}

	var request dto.AssignmentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Status == nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateHousekeepingStatus(*request.Status); err != nil {
		response.FromAppError(c, err)
		return
	}

	var assignment models.HousekeepingAssignment
	if err := ctl.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Không tìm thấy phân công")
			return
		}
		response.ServerError(c)
		return
	}

	if *request.Status == constants.TaskStatusCompleted && assignment.Status != constants.TaskStatusCompleted {
		now := time.Now()
		assignment.CompletedAt = &now
	} else if *request.Status != constants.TaskStatusCompleted {
		assignment.CompletedAt = nil
	}
	assignment.Status = *request.Status
	if request.Notes != "" {
		assignment.Notes = request.Notes
	}

	if err := ctl.DB.Save(&assignment).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.DB.Preload("Task").Preload("Staff").Preload("Room").First(&assignment, assignment.ID)
	response.Success(c, assignment)
}

// DeleteAssignment xóa phân công dọn phòng
func (ctl HousekeepingController) DeleteAssignment(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phân công không hợp lệ")
		return
	}

	result := ctl.DB.Delete(&models.HousekeepingAssignment{}, assignmentID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Không tìm thấy phân công")
		return
	}
	response.Success(c, gin.H{"message": "Đã xóa phân công dọn phòng"})
}
