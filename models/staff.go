package models

import "time"

type Staff struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" gorm:"size:100;uniqueIndex"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Position   string    `json:"position" gorm:"size:50"`
	Department string    `json:"department" gorm:"size:50"`
	HireDate   time.Time `json:"hireDate"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
