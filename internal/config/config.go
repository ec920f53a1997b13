package config

import (
	"os"
	"strconv"
)

// SMTP holds mail transport credentials.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string
	// StorageRoot is the directory under which images/<area>/ folders live.
	StorageRoot string
	// WebURL is the public base URL embedded in confirmation and reset links.
	WebURL string
	SMTP   SMTP
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/orders?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		StorageRoot: getEnv("STORAGE_ROOT", "wwwroot"),
		WebURL:      getEnv("WEB_URL", "http://localhost:8080"),
		SMTP: SMTP{
			Host:     getEnv("MAIL_HOST", "localhost"),
			Port:     getEnv("MAIL_PORT", "587"),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     getEnv("MAIL_FROM", "no-reply@orders.local"),
			FromName: getEnv("MAIL_FROM_NAME", "Orders"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
