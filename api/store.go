package api

import (
	"context"

	"expense-tracker/models"
)

// ExpenseStore 收支记录存储
type ExpenseStore interface {
	List(ctx context.Context, category string) ([]models.Expense, error)
	Get(ctx context.Context, id uint64) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) (uint64, error)
	Update(ctx context.Context, id uint64, patch models.ExpensePatch) error
	Delete(ctx context.Context, id uint64) error
	Categories(ctx context.Context) ([]string, error)
}

// Summarizer 收支汇总
type Summarizer interface {
	Summarize(ctx context.Context) (*models.Summary, error)
}
