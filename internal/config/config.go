package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr      string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTAccessSecret  string
	JWTRefreshSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:         valueOrDefault("HTTP_ADDR", ":8080"),
		MySQLDSN:         strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		RedisAddr:        valueOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:    strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		JWTAccessSecret:  strings.TrimSpace(os.Getenv("JWT_ACCESS_SECRET")),
		JWTRefreshSecret: strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET")),
		SMTPHost:         strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPUsername:     strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword:     strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:         valueOrDefault("SMTP_FROM", "NoReply <no-reply@example.com>"),
		KafkaTopic:       valueOrDefault("KAFKA_TOPIC", "content-events"),
	}

	if cfg.MySQLDSN == "" {
		return Config{}, fmt.Errorf("MYSQL_DSN is required")
	}

	var err error
	if cfg.RedisDB, err = intOrDefault("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.SMTPPort, err = intOrDefault("SMTP_PORT", 587); err != nil {
		return Config{}, err
	}

	if raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intOrDefault(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
