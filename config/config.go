package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EngineMux  = "mux"
	EngineEcho = "echo"
)

type Config struct {
	// HTTP
	BindAddress     string
	Port            int
	Engine          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Metrics
	MetricsEnabled     bool
	MetricsBindAddress string
	MetricsPort        int

	// Sentry
	SentryDSN         string
	SentryEnvironment string

	// Application
	LogLevel string
	LogFile  string

	// EnvFileLoaded reports whether a .env file was found. The logger does not
	// exist yet while loading, so main reports it afterwards.
	EnvFileLoaded bool
}

// Address is the host:port the ID server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}

// MetricsAddress is the host:port the metrics listener uses.
func (c *Config) MetricsAddress() string {
	return net.JoinHostPort(c.MetricsBindAddress, strconv.Itoa(c.MetricsPort))
}

func LoadConfig() (*Config, error) {
	envLoaded := godotenv.Load() == nil

	cfg := &Config{
		BindAddress:        getEnv("BIND_ADDRESS", "0.0.0.0"),
		Engine:             strings.ToLower(getEnv("HTTP_ENGINE", EngineMux)),
		MetricsBindAddress: getEnv("METRICS_BIND_ADDRESS", "127.0.0.1"),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		SentryEnvironment:  getEnv("SENTRY_ENVIRONMENT", "production"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
		EnvFileLoaded:      envLoaded,
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8888); err != nil {
		return nil, err
	}
	if cfg.MetricsPort, err = getEnvInt("METRICS_PORT", 9000); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = getEnvSeconds("READ_TIMEOUT_SECONDS", 15); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getEnvSeconds("WRITE_TIMEOUT_SECONDS", 15); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getEnvSeconds("IDLE_TIMEOUT_SECONDS", 60); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvSeconds("SHUTDOWN_TIMEOUT_SECONDS", 30); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that parse correctly but are still unusable.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMux, EngineEcho:
	default:
		return errors.Errorf("HTTP_ENGINE: unknown engine %q (expected %q or %q)", c.Engine, EngineMux, EngineEcho)
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("PORT: %d is out of range", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return errors.Errorf("METRICS_PORT: %d is out of range", c.MetricsPort)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: invalid integer %q", key, raw)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "%s: invalid boolean %q", key, raw)
	}
	return v, nil
}

func getEnvSeconds(key string, defaultValue int) (time.Duration, error) {
	sec, err := getEnvInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if sec < 0 {
		return 0, errors.Errorf("%s: negative duration %d", key, sec)
	}
	return time.Duration(sec) * time.Second, nil
}
