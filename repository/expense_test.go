package repository

import (
	"context"
	"errors"
	"testing"

	"expense-tracker/database"
	"expense-tracker/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expenseColumns = []string{"id", "title", "amount", "date", "category", "type"}

func TestExpenseRepository_List_SQL(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectQuery("SELECT `id`,`title`,`amount`,`date`,`category`,`type` FROM `expenses` WHERE category = \\? ORDER BY date DESC, ?id DESC").
		WithArgs("food").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(2, "Dinner", "10.00", "2024-01-31", "food", "expense").
			AddRow(1, "Lunch", "40.00", "2024-01-30", "food", "expense"))

	list, err := NewExpenseRepository(pool).List(context.Background(), "food")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[0].ID)
	assert.Equal(t, "2024-01-31", list[0].Date.String())
	assert.True(t, decimal.NewFromInt(40).Equal(list[1].Amount))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_List_NoFilter(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectQuery("SELECT .* FROM `expenses` ORDER BY date DESC, ?id DESC").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	list, err := NewExpenseRepository(pool).List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_List_Error(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectQuery("SELECT .* FROM `expenses`").WillReturnError(errors.New("connection refused"))

	_, err := NewExpenseRepository(pool).List(context.Background(), "")
	assert.EqualError(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Create_SQL(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectExec("INSERT INTO `expenses` \\(`title`,`amount`,`date`,`category`,`type`\\) VALUES").
		WithArgs("Lunch", sqlmock.AnyArg(), "2024-01-31", "food", "expense").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := NewExpenseRepository(pool).Create(context.Background(), newExpense("Lunch", "12.5", "2024-01-31", "food", ""))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Create_Error(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectExec("INSERT INTO `expenses`").WillReturnError(errors.New("check constraint violated"))

	_, err := NewExpenseRepository(pool).Create(context.Background(), newExpense("Lunch", "1", "2024-01-31", "food", models.TypeExpense))
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Update_SQL(t *testing.T) {
	pool, mock := setupMockPool(t)

	// gorm 按列名排序生成 SET 子句
	mock.ExpectExec("UPDATE `expenses` SET `amount`=\\?,`title`=\\? WHERE id = \\?").
		WithArgs(sqlmock.AnyArg(), "Dinner", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	title := "Dinner"
	amount := decimal.NewFromInt(30)
	err := NewExpenseRepository(pool).Update(context.Background(), 5, models.ExpensePatch{Title: &title, Amount: &amount})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Update_NoFields(t *testing.T) {
	pool, mock := setupMockPool(t)

	err := NewExpenseRepository(pool).Update(context.Background(), 5, models.ExpensePatch{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	// 不应发出任何 SQL
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Delete_SQL(t *testing.T) {
	pool, mock := setupMockPool(t)

	mock.ExpectExec("DELETE FROM `expenses` WHERE id = \\?").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewExpenseRepository(pool).Delete(context.Background(), 9))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_NilPool(t *testing.T) {
	repo := NewExpenseRepository(nil)
	_, err := repo.List(context.Background(), "")
	assert.ErrorIs(t, err, database.ErrPoolNotInitialized)
}

func TestExpenseRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(setupSQLitePool(t))

	id1, err := repo.Create(ctx, newExpense("Coffee", "3.5", "2024-01-02", "food", models.TypeExpense))
	require.NoError(t, err)
	id2, err := repo.Create(ctx, newExpense("Rent", "800", "2024-01-01", "housing", ""))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, err := repo.Get(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "Rent", got.Title)
	assert.True(t, decimal.NewFromInt(800).Equal(got.Amount))
	assert.Equal(t, "2024-01-01", got.Date.String())
	assert.Equal(t, "housing", got.Category)
	assert.Equal(t, models.TypeExpense, got.Type)

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(setupSQLitePool(t))

	a, _ := repo.Create(ctx, newExpense("A", "1", "2024-01-01", "food", models.TypeExpense))
	b, _ := repo.Create(ctx, newExpense("B", "2", "2024-01-03", "food", models.TypeExpense))
	c, _ := repo.Create(ctx, newExpense("C", "3", "2024-01-03", "food", models.TypeExpense))
	_, _ = repo.Create(ctx, newExpense("D", "4", "2024-01-05", "travel", models.TypeExpense))

	list, err := repo.List(ctx, "food")
	require.NoError(t, err)
	require.Len(t, list, 3)
	// 日期倒序，同日 id 倒序
	assert.Equal(t, []uint64{c, b, a}, []uint64{list[0].ID, list[1].ID, list[2].ID})
	for _, e := range list {
		assert.Equal(t, "food", e.Category)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "D", all[0].Title)

	none, err := repo.List(ctx, "Food")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExpenseRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(setupSQLitePool(t))

	id, err := repo.Create(ctx, newExpense("Taxi", "20", "2024-02-01", "travel", models.TypeExpense))
	require.NoError(t, err)

	amount := decimal.RequireFromString("25.75")
	typ := models.TypeIncome
	require.NoError(t, repo.Update(ctx, id, models.ExpensePatch{Amount: &amount, Type: &typ}))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Taxi", got.Title)
	assert.Equal(t, "travel", got.Category)
	assert.Equal(t, "2024-02-01", got.Date.String())
	assert.True(t, amount.Equal(got.Amount))
	assert.Equal(t, models.TypeIncome, got.Type)

	// 不存在的 id 静默成功
	require.NoError(t, repo.Update(ctx, id+100, models.ExpensePatch{Amount: &amount}))
}

func TestExpenseRepository_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(setupSQLitePool(t))

	id, err := repo.Create(ctx, newExpense("Book", "15", "2024-03-01", "education", models.TypeExpense))
	require.NoError(t, err)
	keep, err := repo.Create(ctx, newExpense("Pen", "2", "2024-03-02", "education", models.TypeExpense))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep, list[0].ID)

	next, err := repo.Create(ctx, newExpense("Ink", "4", "2024-03-03", "education", models.TypeExpense))
	require.NoError(t, err)
	assert.Greater(t, next, keep)
}

func TestExpenseRepository_Categories(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(setupSQLitePool(t))

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	for _, c := range []string{"travel", "food", "food", "bills"} {
		_, err := repo.Create(ctx, newExpense("x", "1", "2024-01-01", c, models.TypeExpense))
		require.NoError(t, err)
	}

	cats, err = repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bills", "food", "travel"}, cats)
}
