package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Push      PushConfig
	Scheduler SchedulerConfig
	WebSocket WebSocketConfig
	CORS      CORSConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	Env       string
	StaticDir string
}

type DatabaseConfig struct {
	Path string
}

// PushConfig holds the VAPID identity of this server. Keys are generated
// out of band and passed in as URL-safe base64 strings.
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subject         string
	Timeout         time.Duration
	TTL             int
}

type SchedulerConfig struct {
	Interval time.Duration
}

type WebSocketConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	MaxMessageSize  int64
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
	MaxClients      int
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	interval, err := time.ParseDuration(getEnv("REMINDER_INTERVAL", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid REMINDER_INTERVAL: must be positive")
	}

	pushTimeout, err := time.ParseDuration(getEnv("PUSH_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUSH_TIMEOUT: %w", err)
	}

	logLevel := strings.ToLower(getEnv("LOG_LEVEL", "info"))
	if logLevel != "debug" && logLevel != "info" {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be debug or info", logLevel)
	}

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "5000"),
			Host:      getEnv("HOST", "0.0.0.0"),
			Env:       getEnv("ENV", "development"),
			StaticDir: getEnv("STATIC_DIR", ""),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "notes.db"),
		},
		Push: PushConfig{
			VAPIDPublicKey:  getEnv("VAPID_PUBLIC_KEY", ""),
			VAPIDPrivateKey: getEnv("VAPID_PRIVATE_KEY", ""),
			Subject:         getEnv("VAPID_SUBJECT", "mailto:admin@example.com"),
			Timeout:         pushTimeout,
			TTL:             getEnvAsInt("PUSH_TTL", 60),
		},
		Scheduler: SchedulerConfig{
			Interval: interval,
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  getEnvAsInt("WS_READ_BUFFER_SIZE", 1024),
			WriteBufferSize: getEnvAsInt("WS_WRITE_BUFFER_SIZE", 1024),
			MaxMessageSize:  int64(getEnvAsInt("WS_MAX_MESSAGE_SIZE", 4096)),
			WriteWait:       10 * time.Second,
			PongWait:        60 * time.Second,
			PingPeriod:      54 * time.Second,
			MaxClients:      getEnvAsInt("WS_MAX_CLIENTS", 32),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type"),
		},
		Logging: LoggingConfig{
			Level: logLevel,
		},
	}, nil
}

func (c *Config) PushEnabled() bool {
	return c.Push.VAPIDPublicKey != "" && c.Push.VAPIDPrivateKey != ""
}

// Debug reports whether per-connection and per-delivery log lines are wanted.
func (l LoggingConfig) Debug() bool {
	return l.Level == "debug"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
