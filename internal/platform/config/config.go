package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration sourced from the environment.
type Server struct {
	Addr            string
	DatabaseURL     string
	RedisURL        string
	KafkaBrokers    []string
	JWTSigningKey   string
	AccessTokenTTL  time.Duration
	ProjectCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Empty DatabaseURL selects the in-memory stores; empty RedisURL disables the
// project list cache; empty KafkaBrokers disables the activity Kafka sink.
func FromEnv() Server {
	addr := os.Getenv("TASKDECK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
		JWTSigningKey:   jwtSigningKey,
		AccessTokenTTL:  durationEnv("ACCESS_TOKEN_TTL", 24*time.Hour),
		ProjectCacheTTL: durationEnv("PROJECT_CACHE_TTL", 5*time.Minute),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
