// initdb 初始化数据库：建库并执行建表脚本，可重复执行
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"expense-tracker/config"
	"expense-tracker/database"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var configFile, schemaFile string
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（可选）")
	flag.StringVar(&schemaFile, "schema", "", "建表脚本路径，缺省使用内置脚本")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	script := database.DefaultSchema
	if schemaFile != "" {
		data, err := os.ReadFile(schemaFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", schemaFile).Msg("read schema")
		}
		script = string(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Provision(ctx, cfg.Database, script); err != nil {
		log.Fatal().Err(err).Msg("initialize database")
	}
	log.Info().Str("driver", cfg.Database.Driver).Str("database", cfg.Database.Name).Msg("Database initialized.")
}
