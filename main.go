package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"expense-tracker/config"
	"expense-tracker/database"
	"expense-tracker/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Expense Tracker API
// @version 1.0
// @description 收支记录的增删改查与汇总统计
// @BasePath /api

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 5000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("expense-tracker v%s\n", version)
		return
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := overridePort(cfg, port); err != nil {
		log.Fatal().Err(err).Msg("invalid port")
	}

	setupLogger(cfg)
	config.PrintConfig()

	pool, err := database.Open(cfg.Database, cfg.Server.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("open database pool")
	}
	defer pool.Close()

	r, err := router.SetupRouter(cfg, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("setup router")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server started")
	if err := serve(ctx, srv, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("server stopped")
		_ = pool.Close()
		os.Exit(1)
	}
}

// overridePort 命令行参数覆盖端口配置，覆盖后重新校验
func overridePort(cfg *config.Config, port string) error {
	if port == "" {
		return nil
	}
	p, err := strconv.Atoi(strings.TrimPrefix(port, ":"))
	if err != nil {
		return fmt.Errorf("parse port %q: %w", port, err)
	}
	cfg.Server.Port = p
	return cfg.Validate()
}

// serve 启动服务直到 ctx 结束，之后在 timeout 内优雅关闭
// 监听失败时直接返回错误
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupLogger 调试模式或 format=console 时输出可读格式，否则输出 JSON
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Server.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	output := io.Writer(os.Stdout)
	if cfg.Log.Format == "console" || (cfg.Log.Format == "" && cfg.Server.Debug) {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
