package main

import (
	"fmt"
	"os"

	"github.com/lixm/gokao/internal/cli"
	"github.com/lixm/gokao/internal/config"
	"github.com/lixm/gokao/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newCLI() (*cli.CLI, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st := store.NewFileStore(cfg.Store.Path)
	return cli.New(st, os.Stdin, os.Stdout, cfg.Display.SizeDecimals), cfg, nil
}
