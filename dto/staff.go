package dto

// StaffRequest là DTO cho request tạo nhân viên
type StaffRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate" binding:"required"`
}

// StaffBrief là thông tin nhân viên rút gọn nhúng trong task
type StaffBrief struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
