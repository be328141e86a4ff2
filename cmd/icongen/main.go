package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jo-hoe/launchericons/internal/core"
)

func getConfigPath() string {
	// First check if config path is provided via environment variable
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		return configPath
	}

	// Default to config.yaml in current working directory
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to determine working directory: %v", err)
	}
	return filepath.Join(cwd, "config.yaml")
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := getConfigPath()
	config, err := core.LoadConfig(configPath)
	if err != nil {
		log.Printf("failed to load config from %s: %v", configPath, err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.SlogLevel(),
	})))

	coreService, err := core.NewCoreService(config)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		return 1
	}
	defer func() {
		if err := coreService.Close(); err != nil {
			slog.Error("core service close error", "error", err)
		}
	}()

	if !coreService.GenerateIcons() {
		return 1
	}
	return 0
}
