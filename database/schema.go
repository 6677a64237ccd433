package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"expense-tracker/config"
	"expense-tracker/models"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultSchema 内置的建表脚本
//
//go:embed migrations/schema.sql
var DefaultSchema string

// Execer 可执行 SQL 的连接，*sql.DB 和 *sql.Conn 均满足
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SplitStatements 按分号拆分脚本，去掉首尾空白和空语句
// 仅适用于不在字符串或注释中包含分号的简单脚本
func SplitStatements(script string) []string {
	var statements []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(stripLineComments(s)); s != "" {
			statements = append(statements, s)
		}
	}
	return statements
}

func stripLineComments(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// ApplySchema 逐条执行建表脚本，每条语句独立提交
func ApplySchema(ctx context.Context, db Execer, script string) error {
	for i, stmt := range SplitStatements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// CreateDatabase 在未选择数据库的连接上建库（已存在则跳过）
func CreateDatabase(ctx context.Context, db Execer, name string) error {
	if name == "" || strings.ContainsAny(name, "`\x00") {
		return fmt.Errorf("invalid database name %q", name)
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", name))
	return err
}

// Provision 一次性初始化数据库：建库并执行建表脚本
// sqlite 没有独立的建库步骤，直接按模型建表
func Provision(ctx context.Context, cfg config.DatabaseConfig, script string) error {
	if cfg.Driver == config.DriverSQLite {
		dialector, err := Dialector(cfg)
		if err != nil {
			return err
		}
		db, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(false)})
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		return db.WithContext(ctx).AutoMigrate(&models.Expense{})
	}

	server, err := sql.Open("mysql", DSN(cfg, false))
	if err != nil {
		return fmt.Errorf("connect server: %w", err)
	}
	defer server.Close()
	if err := CreateDatabase(ctx, server, cfg.Name); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.Name, err)
	}
	log.Info().Str("database", cfg.Name).Msg("database ensured")

	db, err := sql.Open("mysql", DSN(cfg, true))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	if err := ApplySchema(ctx, db, script); err != nil {
		return err
	}
	log.Info().Int("statements", len(SplitStatements(script))).Msg("schema applied")
	return nil
}
