package config

import (
	"bytes"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// 支持的数据库驱动
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
	// 写接口（POST/PUT/DELETE）每个 IP 在窗口内允许的请求数，0 表示不限流
	WriteRateLimit  int           `mapstructure:"write_rate_limit"`
	WriteRateWindow time.Duration `mapstructure:"write_rate_window"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Charset  string `mapstructure:"charset"`
	PoolSize int    `mapstructure:"pool_size"`
	// DSN 非空时直接使用，忽略上面的连接参数（sqlite 时为文件路径）
	DSN string `mapstructure:"dsn"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	// 逗号分隔的来源列表，"*" 表示允许所有来源
	Origins string `mapstructure:"origins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// 兼容部署脚本中使用的环境变量名
var envBindings = map[string]string{
	"database.driver":    "DB_DRIVER",
	"database.host":      "DB_HOST",
	"database.port":      "DB_PORT",
	"database.name":      "DB_NAME",
	"database.user":      "DB_USER",
	"database.password":  "DB_PASSWORD",
	"database.pool_size": "DB_POOL_SIZE",
	"database.dsn":       "DB_DSN",
	"cors.origins":       "CORS_ORIGINS",
	"server.host":        "HOST",
	"server.port":        "PORT",
	"server.debug":       "DEBUG",
	"log.level":          "LOG_LEVEL",
	"log.format":         "LOG_FORMAT",
}

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		log.Info().Str("file", configPath).Msg("merged external config")
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/expense-tracker")
		externalViper.AddConfigPath("$HOME/.expense-tracker")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Warn().Err(err).Msg("merge external config failed")
			} else {
				log.Info().Str("file", externalViper.ConfigFileUsed()).Msg("merged external config")
			}
		}
	}

	// 3. 环境变量覆盖
	v.SetEnvPrefix("EXPENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, "EXPENSE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.PoolSize <= 0 {
		return fmt.Errorf("database pool size must be positive, got %d", c.Database.PoolSize)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("write rate limit must not be negative")
	}
	if c.Server.WriteRateLimit > 0 && c.Server.WriteRateWindow <= 0 {
		return fmt.Errorf("write rate window must be positive when the limiter is enabled")
	}
	return nil
}

// Addr 监听地址 host:port
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// AllowedOrigins 解析后的跨域来源列表，为空时默认 "*"
func (c CORSConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AllowAll 是否允许所有来源
func (c CORSConfig) AllowAll() bool {
	for _, o := range c.AllowedOrigins() {
		if o == "*" {
			return true
		}
	}
	return false
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	db := GlobalConfig.Database
	log.Info().
		Str("addr", GlobalConfig.Server.Addr()).
		Bool("debug", GlobalConfig.Server.Debug).
		Str("driver", db.Driver).
		Str("database", fmt.Sprintf("%s@%s:%d/%s", db.User, db.Host, db.Port, db.Name)).
		Int("pool_size", db.PoolSize).
		Strs("cors_origins", GlobalConfig.CORS.AllowedOrigins()).
		Msg("current config")
}
