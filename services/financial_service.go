package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/errors"
	"hotelops/models"
	"hotelops/utils"
)

// FinancialService tổng hợp sổ cái phía server
type FinancialService struct {
	db *gorm.DB
}

// NewFinancialService tạo instance mới của FinancialService
func NewFinancialService(db *gorm.DB) *FinancialService {
	return &FinancialService{db: db}
}

type typeCategoryTotal struct {
	Type     string
	Category string
	Total    float64
}

// Summary tổng hợp thu chi theo loại và danh mục trong khoảng ngày bao đóng
// [startDate, endDate]. Truyền nil để bỏ chặn một đầu.
func (s *FinancialService) Summary(startDate, endDate *time.Time) (*dto.FinancialSummaryResponse, error) {
	tx := s.db.Model(&models.FinancialRecord{}).
		Select("type, category, SUM(amount) as total").
		Group("type").Group("category")

	if startDate != nil {
		tx = tx.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		tx = tx.Where("date <= ?", *endDate)
	}

	var rows []typeCategoryTotal
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tổng hợp sổ cái", err)
	}

	summary := dto.FinancialSummaryResponse{
		ByCategory: []dto.CategorySummary{},
	}
	if startDate != nil {
		summary.StartDate = utils.FormatDate(*startDate)
	}
	if endDate != nil {
		summary.EndDate = utils.FormatDate(*endDate)
	}

	byCategory := make(map[string]*dto.CategorySummary)
	for _, row := range rows {
		cat, ok := byCategory[row.Category]
		if !ok {
			cat = &dto.CategorySummary{Category: row.Category}
			byCategory[row.Category] = cat
		}
		switch row.Type {
		case constants.RecordTypeIncome:
			cat.Income += row.Total
			summary.TotalIncome += row.Total
		case constants.RecordTypeExpense:
			cat.Expense += row.Total
			summary.TotalExpense += row.Total
		}
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cat := byCategory[name]
		cat.Net = cat.Income - cat.Expense
		summary.ByCategory = append(summary.ByCategory, *cat)
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	return &summary, nil
}
