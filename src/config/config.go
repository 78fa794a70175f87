package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Backend-Hostel-Billing/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดของแอป อ่านจาก .env / environment
type Config struct {
	Port        string `validate:"required"`
	StoreDriver string `validate:"oneof=xlsx mongo postgres"`
	DataFile    string `validate:"required_if=StoreDriver xlsx"`
	DataSheet   string
	// ImportOnStart copies DataFile into the mongo/postgres store at boot.
	ImportOnStart bool

	MongoURI    string `validate:"required_if=StoreDriver mongo"`
	MongoDB     string
	DatabaseURL string `validate:"required_if=StoreDriver postgres"`

	RedisURI      string
	WorkerEnabled bool

	SessionSecret string
	SessionTTL    time.Duration `validate:"gt=0"`

	ExportDir string `validate:"required"`
	PDFEngine string `validate:"oneof=fpdf chrome"`

	AdminUser         string
	AdminPasswordHash string `validate:"required_with=AdminUser"`
}

var validate = validator.New()

// Load reads .env when present and falls back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		Port:              getEnv("APP_PORT", "8888"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", "xlsx")),
		DataFile:          getEnv("DATA_FILE", "data.xlsx"),
		DataSheet:         os.Getenv("DATA_SHEET"),
		ImportOnStart:     getBool("IMPORT_ON_START", false),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "HostelBillingDB"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURI:          os.Getenv("REDIS_URI"),
		WorkerEnabled:     getBool("WORKER_ENABLED", false),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		ExportDir:         getEnv("EXPORT_DIR", "exports"),
		PDFEngine:         strings.ToLower(getEnv("PDF_ENGINE", "fpdf")),
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.SessionSecret == "" {
		// sessions will not survive a restart
		log.Println("⚠️ SESSION_SECRET not set, using a random secret")
		cfg.SessionSecret = utils.GenerateRandomString(64)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
