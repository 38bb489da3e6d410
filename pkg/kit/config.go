package kit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Config struct {
	Port     string
	LogLevel string

	MetricsEnabled bool
	MetricsToken   string

	// Per-IP POST/DELETE requests allowed per minute. Zero disables the limiter.
	WriteRateLimit int
}

// LoadDotEnv loads .env style files into the process environment. Variables
// already set win. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// LoadConfig reads the service configuration from the environment. On error the
// returned Config is still populated with every value that did parse, so the
// caller can build a logger before reporting the failure.
func LoadConfig(defaultPort string) (Config, error) {
	cfg := Config{
		Port:         Getenv("PORT", defaultPort),
		LogLevel:     Getenv("LOG_LEVEL", "info"),
		MetricsToken: os.Getenv("METRICS_TOKEN"),
	}

	var errs []error

	enabled, err := getenvBool("METRICS_ENABLED", false)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.MetricsEnabled = enabled

	limit, err := getenvInt("WRITE_RATE_LIMIT", 0)
	if err != nil {
		errs = append(errs, err)
	}
	if limit < 0 {
		errs = append(errs, fmt.Errorf("WRITE_RATE_LIMIT: must not be negative, got %d", limit))
		limit = 0
	}
	cfg.WriteRateLimit = limit

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("PORT: %q is not a valid port", cfg.Port))
	}

	return cfg, errors.Join(errs...)
}

func (c Config) HTTPDeps(service string, log *zap.Logger, reg *prometheus.Registry) HTTPDeps {
	return HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: c.MetricsEnabled,
		MetricsToken:   c.MetricsToken,
		WriteRateLimit: c.WriteRateLimit,
	}
}

func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func getenvBool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
