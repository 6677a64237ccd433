package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"expense-tracker/config"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrPoolNotInitialized 连接池未初始化或已关闭
var ErrPoolNotInitialized = errors.New("database pool not initialized")

// Pool 进程级固定容量的数据库连接池
// 每次数据库操作通过 WithConn 独占一个连接，结束后归还
type Pool struct {
	db   atomic.Pointer[gorm.DB]
	size int
}

// Open 按配置创建连接池
func Open(cfg config.DatabaseConfig, debug bool) (*Pool, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(debug),
		// 每条语句自动提交，不额外包事务
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	pool, err := NewPool(db, cfg.PoolSize)
	if err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.Driver).Int("pool_size", cfg.PoolSize).Msg("database pool ready")
	return pool, nil
}

// NewPool 用已打开的 gorm 连接构造连接池，size 为最大连接数
func NewPool(db *gorm.DB, size int) (*Pool, error) {
	if db == nil {
		return nil, ErrPoolNotInitialized
	}
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(size)
	sqlDB.SetMaxIdleConns(size)
	sqlDB.SetConnMaxLifetime(time.Hour)

	p := &Pool{size: size}
	p.db.Store(db)
	return p, nil
}

// Size 最大连接数
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return p.size
}

// WithConn 从池中取出一个连接执行 fn，无论成功失败都会归还连接
// 连接池耗尽时阻塞，直到有连接归还或 ctx 结束
func (p *Pool) WithConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if p == nil {
		return ErrPoolNotInitialized
	}
	db := p.db.Load()
	if db == nil {
		return ErrPoolNotInitialized
	}
	return db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		// NewDB 使 fn 内的每条链式查询互不影响，且仍使用同一个连接
		return fn(tx.Session(&gorm.Session{NewDB: true}))
	})
}

// Close 关闭连接池，之后的 WithConn 返回 ErrPoolNotInitialized
func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	db := p.db.Swap(nil)
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialector 根据驱动类型构造 gorm 方言
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.Open(DSN(cfg, true)), nil
	case config.DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = cfg.Name + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// DSN 构建 MySQL 连接串，withDB 为 false 时不选择数据库（用于建库）
func DSN(cfg config.DatabaseConfig, withDB bool) string {
	if cfg.DSN != "" && withDB {
		return cfg.DSN
	}

	mc := mysqldriver.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	if withDB {
		mc.DBName = cfg.Name
	}
	charset := cfg.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	mc.Params = map[string]string{"charset": charset}
	mc.ParseTime = true
	mc.Loc = time.Local
	return mc.FormatDSN()
}
