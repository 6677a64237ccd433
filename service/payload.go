package service

import (
	"fmt"
	"strings"

	"expense-tracker/models"
)

// ExpenseFromPayload 将已通过完整校验的请求体转换为新记录
// title、category 去除首尾空白，type 缺省为 expense
func ExpenseFromPayload(payload map[string]interface{}) (*models.Expense, error) {
	if errs := ValidateExpense(payload, false); len(errs) > 0 {
		return nil, fmt.Errorf("invalid expense payload: %v", errs)
	}

	amount, _ := ParseAmount(payload[models.FieldAmount])
	date, err := models.ParseDate(payload[models.FieldDate].(string))
	if err != nil {
		return nil, err
	}

	e := &models.Expense{
		Title:    strings.TrimSpace(payload[models.FieldTitle].(string)),
		Amount:   amount,
		Date:     date,
		Category: strings.TrimSpace(payload[models.FieldCategory].(string)),
		Type:     models.TypeExpense,
	}
	if t, ok := payload[models.FieldType].(string); ok {
		e.Type = models.ExpenseType(t)
	}
	if !e.Type.Valid() {
		return nil, fmt.Errorf("invalid expense type %q", e.Type)
	}
	return e, nil
}

// PatchFromPayload 将已通过部分校验的请求体转换为补丁，未知字段被忽略
func PatchFromPayload(payload map[string]interface{}) (models.ExpensePatch, error) {
	var p models.ExpensePatch
	if errs := ValidateExpense(payload, true); len(errs) > 0 {
		return p, fmt.Errorf("invalid expense patch: %v", errs)
	}

	for _, key := range models.UpdatableFields() {
		v, ok := payload[key]
		if !ok {
			continue
		}
		switch key {
		case models.FieldTitle:
			title := v.(string)
			p.Title = &title
		case models.FieldAmount:
			amount, _ := ParseAmount(v)
			p.Amount = &amount
		case models.FieldDate:
			date, err := models.ParseDate(v.(string))
			if err != nil {
				return p, err
			}
			p.Date = &date
		case models.FieldCategory:
			category := v.(string)
			p.Category = &category
		case models.FieldType:
			t := models.ExpenseType(v.(string))
			if !t.Valid() {
				return p, fmt.Errorf("invalid expense type %q", t)
			}
			p.Type = &t
		}
	}
	return p, nil
}
