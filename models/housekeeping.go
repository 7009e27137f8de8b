package models

import "time"

// HousekeepingTask là mẫu công việc dọn phòng (danh mục), không phải phân công cụ thể
type HousekeepingTask struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	Description   string    `json:"description"`
	Category      string    `json:"category" gorm:"size:50"`
	EstimatedTime int       `json:"estimatedTime" gorm:"default:30"` // phút
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// HousekeepingAssignment phân công một mẫu công việc cho nhân viên,
// máy trạng thái pending -> in_progress -> completed, lối thoát skipped
type HousekeepingAssignment struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	TaskID        uint             `json:"taskId"`
	Task          HousekeepingTask `json:"task" gorm:"foreignKey:TaskID"`
	AssignedTo    uint             `json:"assignedTo"`
	Staff         Staff            `json:"staff" gorm:"foreignKey:AssignedTo"`
	RoomID        *uint            `json:"roomId,omitempty"`
	Room          *Room            `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	ScheduledDate time.Time        `json:"scheduledDate" gorm:"index"`
	Priority      string           `json:"priority" gorm:"size:10;default:'medium'"`
	Notes         string           `json:"notes,omitempty"`
	Status        int              `json:"status" gorm:"default:0"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}
