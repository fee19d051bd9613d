package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	// DefaultBaseURL is the default API root for the export endpoint.
	DefaultBaseURL = "http://localhost:8080/v1"

	// DefaultTimeout disables the client-side timeout; the request is
	// bounded only by platform defaults unless configured otherwise.
	DefaultTimeout = 0 * time.Second

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// envPrefix is the viper environment prefix, so base_url becomes
	// RLEXPORT_BASE_URL and timeout becomes RLEXPORT_TIMEOUT.
	envPrefix = "RLEXPORT"
)

// Supported URL schemes.
const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
)

// Config holds the client configuration for connecting to the export API.
type Config struct {
	// BaseURL is the API root (e.g., "http://localhost:8080/v1").
	// Must include the scheme (http:// or https://). A trailing slash
	// is stripped when the request URL is built.
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the maximum duration for the export request.
	// Zero means no client-side timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig resolves configuration with the usual layering, highest
// precedence first: command-line flags, environment variables, config
// file, built-in defaults.
//
// Environment variables use the RLEXPORT_ prefix (RLEXPORT_BASE_URL,
// RLEXPORT_TIMEOUT, RLEXPORT_LOG_LEVEL). If cfgFile is empty, a
// config.yaml is searched in ./configs and the working directory; a
// missing file is not an error. If cfgFile is given explicitly, it must
// exist and parse.
//
// flags may be nil; when provided, the base-url, timeout, and log-level
// flags are bound so that explicitly set flags win over the other
// sources.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_level", DefaultLogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for key, flag := range map[string]string{
			"base_url":  "base-url",
			"timeout":   "timeout",
			"log_level": "log-level",
		} {
			if f := flags.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration and returns an error if any field
// is invalid.
//
// Validation rules:
//   - BaseURL must not be empty
//   - BaseURL must start with http:// or https://
//   - Timeout must not be negative (zero disables the timeout)
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("invalid configuration: base URL cannot be empty")
	}

	if !strings.HasPrefix(c.BaseURL, schemeHTTP) && !strings.HasPrefix(c.BaseURL, schemeHTTPS) {
		return fmt.Errorf("invalid configuration: base URL must have http:// or https:// scheme, got %q", c.BaseURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid configuration: timeout cannot be negative, got %v", c.Timeout)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid configuration: unknown log level %q", c.LogLevel)
	}

	return nil
}
