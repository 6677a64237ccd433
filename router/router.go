package router

import (
	"fmt"
	"net/http"
	"time"

	"expense-tracker/api"
	"expense-tracker/config"
	"expense-tracker/database"
	_ "expense-tracker/docs"
	"expense-tracker/middleware"
	"expense-tracker/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, pool *database.Pool) (*gin.Engine, error) {
	// 设置运行模式
	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	_ = r.SetTrustedProxies(nil)

	corsMiddleware, err := CORSMiddleware(cfg.CORS)
	if err != nil {
		return nil, err
	}

	r.Use(middleware.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Logger()
		}),
	))
	r.Use(corsMiddleware)
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		api.NotFound(c, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		api.Error(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// 健康检查，不依赖数据库
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, api.StatusResponse{Status: "ok"})
	}
	r.GET("/health", health)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 调试模式下开启 pprof
	if cfg.Server.Debug {
		pprof.Register(r)
	}

	expenseRepo := repository.NewExpenseRepository(pool)
	expenseHandler := api.NewExpenseHandler(expenseRepo)
	exportHandler := api.NewExportHandler(expenseRepo)
	summaryHandler := api.NewSummaryHandler(repository.NewSummaryRepository(pool))

	// 写接口可选限流
	var limiter gin.HandlerFunc
	if cfg.Server.WriteRateLimit > 0 {
		limiter = middleware.WriteRateLimit(cfg.Server.WriteRateLimit, cfg.Server.WriteRateWindow)
	}
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{limiter, h}
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", health)

		expenses := apiGroup.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", write(expenseHandler.Create)...)
			expenses.GET("/export", exportHandler.Export)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", write(expenseHandler.Update)...)
			expenses.DELETE("/:id", write(expenseHandler.Delete)...)
		}

		apiGroup.GET("/categories", expenseHandler.Categories)
		apiGroup.GET("/summary", summaryHandler.Summary)
	}

	return r, nil
}

// CORSMiddleware 按配置的来源列表构建跨域中间件
func CORSMiddleware(cfg config.CORSConfig) (gin.HandlerFunc, error) {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.AllowAll() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins()
	}
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors config: %w", err)
	}
	return cors.New(corsConfig), nil
}
