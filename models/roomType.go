package models

import (
	"encoding/json"
	"time"
)

type RoomType struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Description string          `json:"description"`
	Price       float64         `json:"price"` // Giá mỗi đêm
	Capacity    int             `json:"capacity"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	Rooms       []Room          `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
