package models

import "time"

type MaintenanceCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description"`
	Color       string    `json:"color" gorm:"size:10;default:'#3B82F6'"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// MaintenanceTask đi theo máy trạng thái pending -> in_progress -> completed,
// có lối thoát cancelled. CompletedAt chỉ được set đúng lúc chuyển sang completed.
type MaintenanceTask struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	Title          string              `json:"title" gorm:"size:200;not null"`
	Description    string              `json:"description"`
	CategoryID     uint                `json:"categoryId"`
	Category       MaintenanceCategory `json:"category" gorm:"foreignKey:CategoryID"`
	Priority       string              `json:"priority" gorm:"size:10;default:'medium'"`
	AssignedTo     *uint               `json:"assignedTo,omitempty"`
	Staff          *Staff              `json:"staff,omitempty" gorm:"foreignKey:AssignedTo"`
	RoomID         *uint               `json:"roomId,omitempty"`
	Room           *Room               `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	ScheduledDate  time.Time           `json:"scheduledDate"`
	DueDate        *time.Time          `json:"dueDate,omitempty"`
	EstimatedHours *float64            `json:"estimatedHours,omitempty"`
	ActualHours    *float64            `json:"actualHours,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	Status         int                 `json:"status" gorm:"default:0"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}
