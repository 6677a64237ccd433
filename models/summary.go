package models

import "github.com/shopspring/decimal"

// CategoryTotal 单个类别的支出合计
type CategoryTotal struct {
	Category string          `json:"category" example:"food"`
	Total    decimal.Decimal `json:"total" swaggertype:"number" example:"50"`
}

// Summary 收支汇总
type Summary struct {
	Income     decimal.Decimal `json:"income" swaggertype:"number" example:"100"`
	Expense    decimal.Decimal `json:"expense" swaggertype:"number" example:"50"`
	Balance    decimal.Decimal `json:"balance" swaggertype:"number" example:"50"`
	ByCategory []CategoryTotal `json:"byCategory"`
}

// NewSummary 由收入、支出合计计算余额
func NewSummary(income, expense decimal.Decimal, byCategory []CategoryTotal) *Summary {
	if byCategory == nil {
		byCategory = []CategoryTotal{}
	}
	return &Summary{
		Income:     income,
		Expense:    expense,
		Balance:    income.Sub(expense),
		ByCategory: byCategory,
	}
}
