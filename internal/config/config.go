package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Display DisplayConfig `mapstructure:"display"`
	Exports ExportsConfig `mapstructure:"exports"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type DisplayConfig struct {
	// SizeDecimals controls the precision of byte counts shown before a
	// range deletion.
	SizeDecimals int `mapstructure:"size_decimals" validate:"gte=0,lte=6"`
}

type ExportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gokao")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault("store.path", filepath.Join(home, ".config", "gokao", "state.yml"))
	v.SetDefault("display.size_decimals", 1)
	v.SetDefault("exports.directory", ".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
