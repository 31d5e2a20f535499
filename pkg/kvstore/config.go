package kvstore

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Config selects and parameterizes the persistence backend from the
// environment. Backend is one of: memory, file, redis, postgres.
type Config struct {
	Backend string

	FileDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Postgres PostgresConfig
}

func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	pgPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return Config{
		Backend: getEnv("OFFER_STORE_BACKEND", "file"),
		FileDir: getEnv("OFFER_STORE_DIR", "./data"),

		RedisAddr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     pgPort,
			User:     getEnv("DB_USER", "offers"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "offers"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// Open builds the configured backend. The returned close func releases any
// backend connections and is safe to call on every path.
func Open(cfg Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "memory":
		return NewMemory(), noop, nil

	case "file":
		f, err := NewFile(cfg.FileDir)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedis(client), client.Close, nil

	case "postgres":
		pg, err := NewPostgres(cfg.Postgres)
		if err != nil {
			return nil, noop, err
		}
		return pg, pg.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
