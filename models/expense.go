package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 金额以 JSON 数字输出，与前端约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// ExpenseType 记录类型：支出或收入
type ExpenseType string

const (
	TypeExpense ExpenseType = "expense"
	TypeIncome  ExpenseType = "income"
)

// Valid 是否为允许的类型
func (t ExpenseType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Expense 收支记录模型
type Expense struct {
	ID       uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string          `json:"title" gorm:"size:255;not null"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" gorm:"type:decimal(12,2);not null"`
	Date     Date            `json:"date" swaggertype:"string" example:"2024-01-31" gorm:"not null;index"`
	Category string          `json:"category" gorm:"size:100;not null;index"`
	Type     ExpenseType     `json:"type" gorm:"size:10;not null"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// 可更新字段（白名单），顺序即 PUT 请求中的处理顺序
const (
	FieldTitle    = "title"
	FieldAmount   = "amount"
	FieldDate     = "date"
	FieldCategory = "category"
	FieldType     = "type"
)

// UpdatableFields 返回允许部分更新的字段
func UpdatableFields() []string {
	return []string{FieldTitle, FieldAmount, FieldDate, FieldCategory, FieldType}
}
