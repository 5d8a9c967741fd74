package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"marketplace/internal/jobs"
	"marketplace/internal/pkg/errs"
)

const (
	defaultHTTPPort     = "8080"
	defaultDBSslMode    = "disable"
	defaultAMQPExchange = "orders_topic"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	AMQPURL           string
	AMQPExchange      string
	ReconcileSchedule string
}

// LoadConfig reads the configuration through getenv, applies defaults and
// reports every missing required key at once.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            getenv("DB_HOST"),
		DBPort:            getenv("DB_PORT"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), defaultDBSslMode),
		JWTSecret:         getenv("JWT_SECRET"),
		AMQPURL:           getenv("AMQP_URL"),
		AMQPExchange:      withDefault(getenv("AMQP_EXCHANGE"), defaultAMQPExchange),
		ReconcileSchedule: withDefault(getenv("RECONCILE_SCHEDULE"), jobs.DefaultReconcileSchedule),
	}

	var missing []error
	for key, value := range map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_PORT":    cfg.DBPort,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, errs.NewValueIsRequiredError(key))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN is the PostgreSQL connection URL.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
