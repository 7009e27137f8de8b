package dto

// ChargeRequest là DTO cho request tạo/cập nhật phụ thu
type ChargeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ChargeType  string  `json:"chargeType" binding:"required"`
	IsActive    *bool   `json:"isActive"`
}
