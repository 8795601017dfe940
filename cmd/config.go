package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBMaxConns int

	// RabbitMQURL enables the outbox relay when set.
	RabbitMQURL         string
	OrderEventsExchange string
	OutboxRelaySchedule string
	OutboxRelayBatch    int

	LogLevel string
}

// LoadConfig reads envFile into the environment when it exists and builds the
// config from environment variables, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	maxConns, maxConnsErr := intVariable("DB_MAX_CONNS", 10)
	batch, batchErr := intVariable("OUTBOX_RELAY_BATCH", 50)
	if err := errors.Join(maxConnsErr, batchErr); err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:            variable("HTTP_PORT", "8080"),
		DBHost:              variable("DB_HOST", "localhost"),
		DBPort:              variable("DB_PORT", "5432"),
		DBUser:              variable("DB_USER", ""),
		DBPassword:          variable("DB_PASSWORD", ""),
		DBName:              variable("DB_NAME", ""),
		DBSslMode:           variable("DB_SSLMODE", "disable"),
		DBMaxConns:          maxConns,
		RabbitMQURL:         variable("RABBITMQ_URL", ""),
		OrderEventsExchange: variable("ORDER_EVENTS_EXCHANGE", "orders"),
		OutboxRelaySchedule: variable("OUTBOX_RELAY_SCHEDULE", "*/5 * * * * *"),
		OutboxRelayBatch:    batch,
		LogLevel:            variable("LOG_LEVEL", "info"),
	}, nil
}

// DSN is the pgx connection string, pool size included.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSslMode)
	q.Set("pool_max_conns", strconv.Itoa(c.DBMaxConns))
	u.RawQuery = q.Encode()
	return u.String()
}

func variable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
