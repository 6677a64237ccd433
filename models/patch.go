package models

import "github.com/shopspring/decimal"

// ExpensePatch 部分更新，nil 表示该字段未提供
type ExpensePatch struct {
	Title    *string
	Amount   *decimal.Decimal
	Date     *Date
	Category *string
	Type     *ExpenseType
}

// Empty 是否没有任何可更新字段
func (p ExpensePatch) Empty() bool {
	return len(p.Columns()) == 0
}

// Columns 返回列名到新值的映射，列名只来自 UpdatableFields
func (p ExpensePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols[FieldTitle] = *p.Title
	}
	if p.Amount != nil {
		cols[FieldAmount] = *p.Amount
	}
	if p.Date != nil {
		cols[FieldDate] = *p.Date
	}
	if p.Category != nil {
		cols[FieldCategory] = *p.Category
	}
	if p.Type != nil {
		cols[FieldType] = *p.Type
	}
	return cols
}
