package dto

// MaintenanceTaskRequest là DTO cho request tạo/cập nhật công việc bảo trì
type MaintenanceTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CategoryID     uint     `json:"categoryId"`
	Priority       string   `json:"priority"`
	AssignedTo     *uint    `json:"assignedTo"`
	RoomID         *uint    `json:"roomId"`
	ScheduledDate  string   `json:"scheduledDate"`
	DueDate        string   `json:"dueDate"`
	EstimatedHours *float64 `json:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours"`
	Notes          string   `json:"notes"`
	Status         *int     `json:"status"`
}

// HousekeepingAssignmentRequest là DTO cho request tạo phân công dọn phòng
type HousekeepingAssignmentRequest struct {
	TaskID        uint   `json:"taskId" binding:"required"`
	AssignedTo    uint   `json:"assignedTo" binding:"required"`
	RoomID        *uint  `json:"roomId"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes"`
}

// AssignmentStatusRequest là DTO cho request đổi trạng thái phân công
type AssignmentStatusRequest struct {
	Status *int   `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// HousekeepingTaskRequest là DTO cho request tạo mẫu công việc dọn phòng
type HousekeepingTaskRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	EstimatedTime int    `json:"estimatedTime"`
}

// MaintenanceCategoryRequest là DTO cho request tạo danh mục bảo trì
type MaintenanceCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
