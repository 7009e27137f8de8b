package models

import (
	"time"
)

// FinancialRecord là sổ cái chỉ ghi thêm, không bao giờ cập nhật
type FinancialRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:10;index"` // income | expense
	Category    string    `json:"category" gorm:"size:50;index"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date" gorm:"index"`
	ReferenceID *uint     `json:"referenceId,omitempty"` // Booking liên quan, nếu có
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
