package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/yurifrl/moneyprinter/pkg/clock"
	"github.com/yurifrl/moneyprinter/pkg/session"
)

const EnvPrefix = "MONEYPRINTER"

// Config is the effective runtime configuration.
type Config struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Amount   float64       `mapstructure:"amount" yaml:"amount"`
	LogLevel string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string        `mapstructure:"log_file" yaml:"log_file"`
}

// New creates a configuration holding the defaults.
func New() *Config {
	return &Config{
		Interval: clock.DefaultInterval,
		Amount:   session.DefaultPrintAmount,
		LogLevel: "info",
	}
}

// RegisterFlags adds the configuration flags to fs. Flag names match the
// config keys with dashes instead of underscores.
func RegisterFlags(fs *pflag.FlagSet) {
	d := New()
	fs.Duration("interval", d.Interval, "Accrual interval")
	fs.Float64("amount", d.Amount, "Initial print amount")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-file", d.LogFile, "Write logs to this file")
}

// Build loads configuration from defaults, the config file, the environment
// (including a .env file in the working directory) and flags, in increasing
// order of precedence. flags may be nil.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	d := New()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("amount", d.Amount)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		for _, key := range []string{"interval", "amount", "log_level", "log_file"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Logger builds the process logger. Output goes to LogFile when set and to
// fallback otherwise; the returned closer releases the file.
func (c *Config) Logger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
