package dto

// FinancialRecordRequest là DTO cho request ghi sổ
type FinancialRecordRequest struct {
	Type        string  `json:"type" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date" binding:"required"`
	ReferenceID *uint   `json:"referenceId"`
}

// CategorySummary là tổng hợp thu chi theo danh mục
type CategorySummary struct {
	Category string  `json:"category"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
	Net      float64 `json:"net"`
}

// FinancialSummaryResponse là tổng hợp thu chi trong một khoảng ngày
type FinancialSummaryResponse struct {
	StartDate    string            `json:"startDate,omitempty"`
	EndDate      string            `json:"endDate,omitempty"`
	TotalIncome  float64           `json:"totalIncome"`
	TotalExpense float64           `json:"totalExpense"`
	Net          float64           `json:"net"`
	ByCategory   []CategorySummary `json:"byCategory"`
}
