package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Storage    StorageConfig    `json:"storage"`
	Postgres   PostgresConfig   `json:"postgres"`
	Firestore  FirestoreConfig  `json:"firestore"`
	Redis      RedisConfig      `json:"redis"`
	APIKey     string           `json:"api_key,omitempty"`
	SLA        SLAConfig        `json:"sla"`
	Escalation EscalationConfig `json:"escalation"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigins  []string      `json:"allowed_origins"`

	AdminRPS    float64 `json:"admin_rps"`
	AdminBurst  int     `json:"admin_burst"`
	PublicRPS   float64 `json:"public_rps"`
	PublicBurst int     `json:"public_burst"`
}

type StorageConfig struct {
	Driver string `json:"driver"`
}

type PostgresConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Database    string `json:"database"`
	User        string `json:"user"`
	Password    string `json:"password,omitempty"`
	SSLMode     string `json:"ssl_mode"`
	AutoMigrate bool   `json:"auto_migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type FirestoreConfig struct {
	ProjectID       string `json:"project_id"`
	CredentialsPath string `json:"credentials_path,omitempty"`
}

type RedisConfig struct {
	Addr     string        `json:"addr"`
	Password string        `json:"password,omitempty"`
	DB       int           `json:"db"`
	CacheTTL time.Duration `json:"cache_ttl"`
}

type SLAConfig struct {
	// TablePath points to an optional JSON override of the built-in table.
	TablePath     string        `json:"table_path,omitempty"`
	SweepInterval time.Duration `json:"sweep_interval"`
}

type EscalationConfig struct {
	WebhookURL string `json:"webhook_url"`
	Disabled   bool   `json:"disabled"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			AdminRPS:        getEnvFloat("ADMIN_RATE_RPS", 2),
			AdminBurst:      getEnvInt("ADMIN_RATE_BURST", 5),
			PublicRPS:       getEnvFloat("PUBLIC_RATE_RPS", 10),
			PublicBurst:     getEnvInt("PUBLIC_RATE_BURST", 20),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", DriverPostgres),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "citydesk_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", false),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsPath: getEnv("FIRESTORE_CREDENTIALS", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("ISSUE_CACHE_TTL", 30*time.Second),
		},
		APIKey: getEnv("API_KEY", ""),
		SLA: SLAConfig{
			TablePath:     getEnv("SLA_TABLE_PATH", ""),
			SweepInterval: getEnvDuration("SLA_SWEEP_INTERVAL", time.Minute),
		},
		Escalation: EscalationConfig{
			WebhookURL: getEnv("ESCALATION_WEBHOOK_URL", ""),
			Disabled:   getEnvBool("ESCALATION_WEBHOOK_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Duration("sla_sweep_interval", cfg.SLA.SweepInterval),
		slog.Bool("escalation_webhook_disabled", cfg.Escalation.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Http.AdminRPS <= 0 || c.Http.PublicRPS <= 0 {
		return errors.New("rate limits must be positive")
	}

	if c.APIKey == "" {
		return errors.New("API_KEY is empty")
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case DriverFirestore:
		if c.Firestore.ProjectID == "" {
			return errors.New("FIRESTORE_PROJECT_ID required")
		}
	default:
		return errors.New("STORAGE_DRIVER must be postgres or firestore")
	}

	if c.SLA.SweepInterval <= 0 {
		return errors.New("SLA_SWEEP_INTERVAL must be positive")
	}

	if !c.Escalation.Disabled && c.Escalation.WebhookURL == "" {
		return errors.New("ESCALATION_WEBHOOK_URL required unless ESCALATION_WEBHOOK_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
