package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/wirekit/internal/config"
	"github.com/danmuck/wirekit/internal/inspector"
	"github.com/danmuck/wirekit/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to an inspector TOML config")
	addr := flag.String("addr", "", "listen address, overrides the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspectd: %v\n", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.Name)
	logger.Info().Str("addr", cfg.Addr).Msg("starting inspector")

	svc := inspector.NewService(cfg)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "inspectd: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path, addr string) (config.InspectorConfig, error) {
	cfg := config.DefaultInspectorConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadInspectorConfig(path)
		if err != nil {
			return config.InspectorConfig{}, err
		}
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if err := config.ValidateInspectorConfig(cfg); err != nil {
		return config.InspectorConfig{}, err
	}
	return cfg, nil
}
