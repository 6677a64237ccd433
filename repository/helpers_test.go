package repository

import (
	"context"
	"path/filepath"
	"testing"

	"expense-tracker/config"
	"expense-tracker/database"
	"expense-tracker/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockPool 基于 sqlmock 的 MySQL 连接池，用于校验生成的 SQL
func setupMockPool(t *testing.T) (*database.Pool, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	pool, err := database.NewPool(gormDB, 5)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool, mock
}

// setupSQLitePool 基于临时 sqlite 文件的连接池，用于行为测试
func setupSQLitePool(t *testing.T) *database.Pool {
	pool, err := database.Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "expenses.db"),
		PoolSize: 5,
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	err = pool.WithConn(context.Background(), func(tx *gorm.DB) error {
		return tx.AutoMigrate(&models.Expense{})
	})
	require.NoError(t, err)
	return pool
}

func newExpense(title, amount, date, category string, typ models.ExpenseType) *models.Expense {
	return &models.Expense{
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Date:     models.MustParseDate(date),
		Category: category,
		Type:     typ,
	}
}
