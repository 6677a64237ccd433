package repository

import (
	"context"

	"expense-tracker/database"
	"expense-tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryRepository 收支汇总，每次调用都重新计算
type SummaryRepository struct {
	pool *database.Pool
}

// NewSummaryRepository 创建汇总查询
func NewSummaryRepository(pool *database.Pool) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

type totalsRow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summarize 统计收入、支出合计、余额以及各类别支出合计
func (r *SummaryRepository) Summarize(ctx context.Context) (*models.Summary, error) {
	var totals totalsRow
	byCategory := []models.CategoryTotal{}

	err := r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&models.Expense{}).
			Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense",
				models.TypeIncome, models.TypeExpense).
			Scan(&totals).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Expense{}).
			Select("category, SUM(amount) AS total").
			Where("type = ?", models.TypeExpense).
			Group("category").
			Order("category").
			Scan(&byCategory).Error
	})
	if err != nil {
		return nil, err
	}

	return models.NewSummary(totals.Income, totals.Expense, byCategory), nil
}
