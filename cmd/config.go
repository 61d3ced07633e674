package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DefaultHTTPPort          = "3000"
	DefaultEnvFile           = ".env"
	DefaultOrderEventsTopic  = "dispatch.order-events"
	DefaultDepotLocationName = "Depot"
)

type Config struct {
	HTTPPort              string
	LogLevel              string
	RoutesFile            string
	DispatchSchedule      string
	DepotLocation         string
	KafkaHost             string
	KafkaOrderEventsTopic string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error; variables already set
// in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:              getEnv("HTTP_PORT", DefaultHTTPPort),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RoutesFile:            os.Getenv("ROUTES_FILE"),
		DispatchSchedule:      os.Getenv("DISPATCH_SCHEDULE"),
		DepotLocation:         getEnv("DEPOT_LOCATION", DefaultDepotLocationName),
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaOrderEventsTopic: getEnv("KAFKA_ORDER_EVENTS_TOPIC", DefaultOrderEventsTopic),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("HTTP_PORT must be a port number, got %q", c.HTTPPort)
	}
	if _, err = parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// SlogLevel returns the application log level.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

// EchoLogLevel maps the application log level onto echo's own logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
