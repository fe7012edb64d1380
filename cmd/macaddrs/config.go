package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MACADDRS"

// config holds the merged settings from flags, environment, and config file.
type config struct {
	Contains    []string      `mapstructure:"contains"`
	Exclude     []string      `mapstructure:"exclude"`
	SkipVirtual bool          `mapstructure:"skip-virtual"`
	Command     string        `mapstructure:"command"`
	Args        []string      `mapstructure:"args"`
	Delimiter   string        `mapstructure:"delimiter"`
	Input       string        `mapstructure:"input"`
	Timeout     time.Duration `mapstructure:"timeout"`
	JSON        bool          `mapstructure:"json"`
	Debug       bool          `mapstructure:"debug"`
}

// loadConfig layers the flags of cmd over MACADDRS_* environment variables
// and the optional config file, flags winning.
func loadConfig(v *viper.Viper, cmd *cobra.Command, configFile string) (config, error) {
	var cfg config

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cfg, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Input != "" && c.Command != "" {
		return errors.New("--input and --command are mutually exclusive")
	}

	if len(c.Args) > 0 && c.Command == "" {
		return errors.New("--args requires --command")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}
