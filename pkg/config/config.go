package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Email    EmailConfig
	R2       R2Config
	Log      LogConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port        string
	Environment string
}

// StorageConfig ilan/teklif/ayar koleksiyonlarının tutulduğu anahtar-değer deposu
type StorageConfig struct {
	Driver      string // postgres, redis, memory
	DatabaseURL string
	RedisURL    string
	RedisPrefix string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type AdminConfig struct {
	InitialPassword string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	NotifyTo     string
}

type R2Config struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	CDNBaseURL string
}

type LogConfig struct {
	Level string
}

type ScheduleConfig struct {
	OfferDigest string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "postgres"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
			RedisPrefix: getEnv("REDIS_PREFIX", "reisemlak:"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			TTL:    time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Admin: AdminConfig{
			InitialPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Reis Emlak <noreply@reisemlak.com>"),
			NotifyTo:     getEnv("NOTIFY_EMAIL", "info@reisemlak.com"),
		},
		R2: R2Config{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			CDNBaseURL: getEnv("CDN_BASE_URL", "https://cdn.reisemlak.com"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Schedule: ScheduleConfig{
			OfferDigest: getEnv("OFFER_DIGEST_SCHEDULE", "0 19 * * *"),
		},
	}
}

// MediaEnabled R2 bilgileri eksiksizse true döner
func (c *Config) MediaEnabled() bool {
	return c.R2.AccountID != "" && c.R2.AccessKey != "" && c.R2.SecretKey != "" && c.R2.BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
