package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jo-hoe/launchericons/internal/common"
	"github.com/jo-hoe/launchericons/internal/imageprocessing"
	"gopkg.in/yaml.v3"
)

type Database struct {
	Type             string `yaml:"type" validate:"omitempty,oneof=none sqlite"`
	ConnectionString string `yaml:"connectionString"`
}

type ServiceConfig struct {
	SourceImage           string   `yaml:"sourceImage" validate:"required"`
	ResourceRoot          string   `yaml:"resourceRoot" validate:"required"`
	Filter                string   `yaml:"filter"`
	CompressionLevel      string   `yaml:"compressionLevel" validate:"oneof=default none speed best"`
	SVGRenderSize         int      `yaml:"svgRenderSize" validate:"min=1,max=16384"`
	StaleDescriptorPolicy string   `yaml:"staleDescriptorPolicy" validate:"oneof=warn fail"`
	LogLevel              string   `yaml:"logLevel" validate:"oneof=debug info warn error"`
	Database              Database `yaml:"database"`
}

// LoadConfig loads configuration from the specified YAML file.
// Relative image and resource paths are resolved against the config file's directory.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config ServiceConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	config.resolvePaths(filepath.Dir(configPath))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *ServiceConfig) applyDefaults() {
	if c.Filter == "" {
		c.Filter = imageprocessing.DefaultFilter
	}
	if c.CompressionLevel == "" {
		c.CompressionLevel = "default"
	}
	if c.SVGRenderSize == 0 {
		c.SVGRenderSize = imageprocessing.DefaultSVGRenderSize
	}
	if c.StaleDescriptorPolicy == "" {
		c.StaleDescriptorPolicy = "warn"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Filter = strings.ToLower(c.Filter)
	c.CompressionLevel = strings.ToLower(c.CompressionLevel)
	c.StaleDescriptorPolicy = strings.ToLower(c.StaleDescriptorPolicy)
	c.LogLevel = strings.ToLower(c.LogLevel)
}

func (c *ServiceConfig) resolvePaths(baseDir string) {
	if c.SourceImage != "" && !filepath.IsAbs(c.SourceImage) {
		c.SourceImage = filepath.Join(baseDir, c.SourceImage)
	}
	if c.ResourceRoot != "" && !filepath.IsAbs(c.ResourceRoot) {
		c.ResourceRoot = filepath.Join(baseDir, c.ResourceRoot)
	}
}

// Validate checks struct tags and the resampling filter name
func (c *ServiceConfig) Validate() error {
	validator := &common.GenericValidator{}
	if err := validator.Validate(c); err != nil {
		return err
	}
	if !isSupportedFilter(c.Filter) {
		return fmt.Errorf("invalid configuration: unsupported filter %q, expected one of %v", c.Filter, imageprocessing.FilterNames())
	}
	if c.Database.Type == "sqlite" && c.Database.ConnectionString == "" {
		return fmt.Errorf("invalid configuration: database.connectionString is required for sqlite")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level; unknown values fall back to info.
func (c *ServiceConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isSupportedFilter(name string) bool {
	for _, f := range imageprocessing.FilterNames() {
		if f == name {
			return true
		}
	}
	return false
}
