package repository

import (
	"context"
	"errors"

	"expense-tracker/database"
	"expense-tracker/models"

	"gorm.io/gorm"
)

var (
	// ErrNoFieldsToUpdate 更新请求中没有可识别的字段，不执行 SQL
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("expense not found")
)

// listColumns 列表查询返回的列
var listColumns = []string{"id", "title", "amount", "date", "category", "type"}

// ExpenseRepository 收支记录的增删改查
type ExpenseRepository struct {
	pool *database.Pool
}

// NewExpenseRepository 创建记录存储
func NewExpenseRepository(pool *database.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// List 按日期倒序、同日按 id 倒序返回全部记录，category 非空时按类别精确过滤
func (r *ExpenseRepository) List(ctx context.Context, category string) ([]models.Expense, error) {
	expenses := []models.Expense{}
	err := r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		query := tx.Model(&models.Expense{}).Select(listColumns)
		if category != "" {
			query = query.Where("category = ?", category)
		}
		return query.Order("date DESC").Order("id DESC").Find(&expenses).Error
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// Get 按 id 查询单条记录
func (r *ExpenseRepository) Get(ctx context.Context, id uint64) (*models.Expense, error) {
	var expense models.Expense
	err := r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Select(listColumns).Where("id = ?", id).Take(&expense).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Create 插入新记录并返回数据库分配的 id
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) (uint64, error) {
	expense.ID = 0
	if expense.Type == "" {
		expense.Type = models.TypeExpense
	}
	err := r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Create(expense).Error
	})
	if err != nil {
		return 0, err
	}
	return expense.ID, nil
}

// Update 按 id 更新补丁中提供的字段
// 不检查记录是否存在，更新不存在的 id 影响 0 行且不报错
func (r *ExpenseRepository) Update(ctx context.Context, id uint64, patch models.ExpensePatch) error {
	columns := patch.Columns()
	if len(columns) == 0 {
		return ErrNoFieldsToUpdate
	}
	return r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.Expense{}).Where("id = ?", id).Updates(columns).Error
	})
}

// Delete 按 id 物理删除，id 不存在时静默成功
func (r *ExpenseRepository) Delete(ctx context.Context, id uint64) error {
	return r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&models.Expense{}).Error
	})
}

// Categories 返回去重后按名称排序的类别
func (r *ExpenseRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.Expense{}).Distinct("category").Order("category").Pluck("category", &categories).Error
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
