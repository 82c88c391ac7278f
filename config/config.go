// Package config loads application configuration from an optional YAML file
// with LEDGER_* environment overrides. Every key has a default, so running
// without a config file works out of the box.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// DefaultOpeningBalance seeds the cumulative balance fold when the config
// does not override it.
const DefaultOpeningBalance = "-35.00"

type Config struct {
	// DataDir holds the three ledger snapshot files.
	DataDir string `mapstructure:"data_dir"`

	// OpeningBalance is the seed of the cumulative balance fold, as a
	// decimal string.
	OpeningBalance string `mapstructure:"opening_balance"`

	LogLevel string `mapstructure:"log_level"`

	Web struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"web"`
}

// Load reads configuration from path, or from an optional ./config.yaml
// when path is empty. Environment variables prefixed LEDGER_ override file
// values (nested keys use underscores, e.g. LEDGER_WEB_ADDR).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "data")
	v.SetDefault("opening_balance", DefaultOpeningBalance)
	v.SetDefault("log_level", "info")
	v.SetDefault("web.addr", "127.0.0.1:8179")

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	var c Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the implicit ./config.yaml is optional.
		if path != "" || !errors.As(err, &notFound) {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if _, err := c.Opening(); err != nil {
		return c, err
	}
	return c, nil
}

// Opening parses the configured opening balance.
func (c Config) Opening() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.OpeningBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid opening_balance %q: %w", c.OpeningBalance, err)
	}
	return d, nil
}
