package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/termwallet/internal/navigation"
	"github.com/Mr-Dark-debug/termwallet/internal/tui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TERMWALLET"

// appConfig holds everything the binary reads from file, env and flags.
type appConfig struct {
	PollInterval time.Duration `mapstructure:"poll-interval"`
	StartPage    string        `mapstructure:"start-page"`
	Mouse        bool          `mapstructure:"mouse"`
	LogFile      string        `mapstructure:"log-file"`
	LogLevel     string        `mapstructure:"log-level"`
}

// defaultConfigPath returns $HOME/.config/termwallet/config.yml, or "" if
// the home directory is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "termwallet", "config.yml")
}

// loadConfig reads configPath (or the default location) on top of built-in
// defaults and TERMWALLET_* environment variables. A missing file is not an
// error. v may already carry bound flags.
// bindFlags makes the named flags override config file and environment
// values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("bind flag --%s: no such flag", name)
		}
		if err := v.BindPFlag(name, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper, configPath string) (appConfig, error) {
	var cfg appConfig

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("poll-interval", tui.DefaultPollInterval)
	v.SetDefault("start-page", navigation.Welcome.String())
	v.SetDefault("mouse", true)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", "info")

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive, got %s", c.PollInterval)
	}
	if _, err := navigation.ParsePage(c.StartPage); err != nil {
		return fmt.Errorf("start-page: %w", err)
	}
	return nil
}

func (c appConfig) startPage() navigation.Page {
	p, _ := navigation.ParsePage(c.StartPage)
	return p
}
