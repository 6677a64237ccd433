package service

import (
	"testing"

	"expense-tracker/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseFromPayload(t *testing.T) {
	e, err := ExpenseFromPayload(map[string]interface{}{
		"title":    "  Groceries ",
		"amount":   "40",
		"date":     "2024-03-01",
		"category": " food ",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), e.ID)
	assert.Equal(t, "Groceries", e.Title)
	assert.Equal(t, "food", e.Category)
	assert.True(t, decimal.NewFromInt(40).Equal(e.Amount))
	assert.Equal(t, "2024-03-01", e.Date.String())
	assert.Equal(t, models.TypeExpense, e.Type)
}

func TestExpenseFromPayload_Income(t *testing.T) {
	p := validPayload()
	p["type"] = "income"
	e, err := ExpenseFromPayload(p)
	require.NoError(t, err)
	assert.Equal(t, models.TypeIncome, e.Type)
}

func TestExpenseFromPayload_Invalid(t *testing.T) {
	_, err := ExpenseFromPayload(map[string]interface{}{"title": "x"})
	assert.Error(t, err)
}

func TestPatchFromPayload(t *testing.T) {
	p, err := PatchFromPayload(map[string]interface{}{
		"amount": 99,
		"type":   "income",
		"id":     123,
		"notes":  "ignored",
	})
	require.NoError(t, err)

	assert.Nil(t, p.Title)
	assert.Nil(t, p.Date)
	assert.Nil(t, p.Category)
	require.NotNil(t, p.Amount)
	assert.True(t, decimal.NewFromInt(99).Equal(*p.Amount))
	require.NotNil(t, p.Type)
	assert.Equal(t, models.TypeIncome, *p.Type)
	assert.Len(t, p.Columns(), 2)
}

func TestPatchFromPayload_NoRecognizedFields(t *testing.T) {
	p, err := PatchFromPayload(map[string]interface{}{"foo": 1})
	require.NoError(t, err)
	assert.True(t, p.Empty())

	p, err = PatchFromPayload(map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestPatchFromPayload_Invalid(t *testing.T) {
	_, err := PatchFromPayload(map[string]interface{}{"date": "tomorrow"})
	assert.Error(t, err)
}

func TestPayload_InvalidType(t *testing.T) {
	_, err := PatchFromPayload(map[string]interface{}{"type": "refund"})
	assert.Error(t, err)

	payload := map[string]interface{}{"title": "x", "amount": 1.0, "date": "2024-01-01", "category": "c", "type": "refund"}
	_, err = ExpenseFromPayload(payload)
	assert.Error(t, err)
}
