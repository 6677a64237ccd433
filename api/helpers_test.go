package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"expense-tracker/config"
	"expense-tracker/database"
	"expense-tracker/middleware"
	"expense-tracker/models"
	"expense-tracker/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupMockPool 基于 sqlmock 的 MySQL 连接池
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

// setupSQLitePool 基于临时 sqlite 文件的连接池
func setupSQLitePool(t *testing.T) *database.Pool {
	pool, err := database.Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "api.db"),
		PoolSize: 5,
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, pool.WithConn(context.Background(), func(tx *gorm.DB) error {
		return tx.AutoMigrate(&models.Expense{})
	}))
	return pool
}

// newTestRouter 注册与线上一致的路由
func newTestRouter(store ExpenseStore, summarizer Summarizer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	h := NewExpenseHandler(store)
	r.GET("/api/expenses", h.List)
	r.POST("/api/expenses", h.Create)
	r.GET("/api/expenses/export", NewExportHandler(store).Export)
	r.GET("/api/expenses/:id", h.Get)
	r.PUT("/api/expenses/:id", h.Update)
	r.DELETE("/api/expenses/:id", h.Delete)
	r.GET("/api/categories", h.Categories)
	if summarizer != nil {
		r.GET("/api/summary", NewSummaryHandler(summarizer).Summary)
	}
	return r
}

// newPoolRouter 使用真实存储的路由
func newPoolRouter(pool *database.Pool) *gin.Engine {
	return newTestRouter(repository.NewExpenseRepository(pool), repository.NewSummaryRepository(pool))
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// fakeStore 按预设返回值响应的存储，记录调用情况
type fakeStore struct {
	mu       sync.Mutex
	err      error
	getErr   error
	expenses []models.Expense
	created  []*models.Expense
	patches  map[uint64]models.ExpensePatch
	deleted  []uint64
}

func (s *fakeStore) List(_ context.Context, category string) ([]models.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Expense{}
	for _, e := range s.expenses {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) Get(_ context.Context, id uint64) (*models.Expense, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, e := range s.expenses {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) Create(_ context.Context, expense *models.Expense) (uint64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, expense)
	return uint64(len(s.created)), nil
}

func (s *fakeStore) Update(_ context.Context, id uint64, patch models.ExpensePatch) error {
	if patch.Empty() {
		return repository.ErrNoFieldsToUpdate
	}
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.patches == nil {
		s.patches = map[uint64]models.ExpensePatch{}
	}
	s.patches[id] = patch
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id uint64) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) Categories(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"food"}, nil
}
