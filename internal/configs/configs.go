package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"checklist.com/daily-checklist/pkg/constants"
)

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	AppURL                 string
	StorageDriver          string
	DatabaseDSN            string
	RedisAddr              string
	StateKey               string
	RateLimit              int
	TickIntervalSeconds    int
	ResetHour              int
	Location               *time.Location
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		StorageDriver:          getEnv("STORAGE_DRIVER", StorageSQLite),
		DatabaseDSN:            getEnv("DATABASE_DSN", "checklist.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		StateKey:               getEnv("STATE_KEY", constants.StateKey),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		TickIntervalSeconds:    getEnvAsInt("TICK_INTERVAL_SECONDS", 60),
		ResetHour:              getEnvAsInt("RESET_HOUR", 23),
		Location:               getEnvAsLocation("TIMEZONE"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	return time.Now().In(c.Location)
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalSeconds) * time.Second
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.StorageDriver != StorageSQLite && cfg.StorageDriver != StorageRedis {
		log.Fatal("STORAGE_DRIVER must be sqlite or redis")
	}
	if cfg.StorageDriver == StorageSQLite && cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.StateKey == "" {
		log.Fatal("STATE_KEY must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.TickIntervalSeconds <= 0 {
		log.Fatal("TICK_INTERVAL_SECONDS must be greater than 0")
	}
	if cfg.ResetHour < 0 || cfg.ResetHour > 23 {
		log.Fatal("RESET_HOUR must be between 0 and 23")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsLocation(key string) *time.Location {
	v := os.Getenv(key)
	if v == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Fatalf("invalid time zone for %s: %v", key, err)
	}
	return loc
}
