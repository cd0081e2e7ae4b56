package configs

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	Environment string
	JWTSecret   string
	ServerPort  string
	DBPath      string
	LogLevel    string
	LogFormat   string
	TokenTTL    time.Duration
	GinMode     string
}

const (
	defaultEnvironment = "development"
	envEnvironmentKey  = "APP_ENV"
	defaultJWTSecret   = "securities"     // Default JWT secret, used if env var is not set.
	envJWTSecretKey    = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultServerPort  = "8080"           // Default server port.
	envServerPortKey   = "SERVER_PORT"    // Environment variable name for the server port.
	defaultDBPath      = "data/securities_accounts.db"
	envDBPathKey       = "SQLITE_DB_PATH"
	defaultLogLevel    = "info"
	envLogLevelKey     = "LOG_LEVEL"
	defaultLogFormat   = "console"
	envLogFormatKey    = "LOG_FORMAT"
	defaultTokenTTL    = 24 // 小时
	envTokenTTLKey     = "TOKEN_TTL_HOURS"
	envGinModeKey      = "GIN_MODE"
)

// LoadConfig loads configuration from .env, environment variables or defaults.
// It should be called once at application startup, before the logger exists,
// so warnings go through the standard logger.
func LoadConfig() *Configuration {
	once.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("信息: 已从 .env 文件加载环境变量。")
		}

		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("警告: %s 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		ttlHours := defaultTokenTTL
		if raw := os.Getenv(envTokenTTLKey); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				ttlHours = parsed
			} else {
				log.Printf("警告: %s=%q 无效，使用默认值 %d 小时。", envTokenTTLKey, raw, defaultTokenTTL)
			}
		}

		AppConfig = Configuration{
			Environment: getenvDefault(envEnvironmentKey, defaultEnvironment),
			JWTSecret:   jwtSecret,
			ServerPort:  serverPort,
			DBPath:      getenvDefault(envDBPathKey, defaultDBPath),
			LogLevel:    getenvDefault(envLogLevelKey, defaultLogLevel),
			LogFormat:   getenvDefault(envLogFormatKey, defaultLogFormat),
			TokenTTL:    time.Duration(ttlHours) * time.Hour,
			GinMode:     os.Getenv(envGinModeKey),
		}

		log.Println("应用配置已加载。")
	})
	return &AppConfig
}

// IsProduction 判断是否为生产环境
func (c *Configuration) IsProduction() bool {
	return c.Environment == "production"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
