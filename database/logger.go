package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"
)

// newGormLogger 将 gorm 的 SQL 日志输出到 zerolog
func newGormLogger(debug bool) logger.Interface {
	zl := log.With().Str("component", "gorm").Logger()
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(&zl, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
