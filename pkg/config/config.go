package config

import (
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMaxOpenConns = 8

type Config struct {
	Host         string
	Port         string
	DatabaseURL  string
	MaxOpenConns int
	LogLevel     string
	AppEnv       string
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "./data/ito.db"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AppEnv:       getEnv("APP_ENV", "local"),
	}
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
