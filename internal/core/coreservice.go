package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jo-hoe/launchericons/internal/database"
	"github.com/jo-hoe/launchericons/internal/icons"
	"github.com/jo-hoe/launchericons/internal/imageprocessing"
)

type CoreService struct {
	config *ServiceConfig
	// databaseService stays nil until the first run is recorded
	databaseService database.DatabaseService
	generator       *icons.Generator
}

func NewCoreService(config *ServiceConfig) (*CoreService, error) {
	level, err := imageprocessing.ParseCompressionLevel(config.CompressionLevel)
	if err != nil {
		return nil, err
	}

	service := &CoreService{config: config}
	generator, err := icons.NewGenerator(icons.Options{
		SourceImage:           config.SourceImage,
		ResourceRoot:          config.ResourceRoot,
		Filter:                config.Filter,
		CompressionLevel:      level,
		SVGRenderSize:         config.SVGRenderSize,
		StaleDescriptorPolicy: icons.StalePolicy(config.StaleDescriptorPolicy),
		Recorder:              service,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	service.generator = generator

	return service, nil
}

// GenerateIcons runs the generator once. The run is recorded in the manifest, if one is configured.
func (service *CoreService) GenerateIcons() bool {
	return service.generator.GenerateIcons()
}

func (service *CoreService) Close() error {
	if service.databaseService != nil {
		return service.databaseService.Close()
	}
	return nil
}

// RecordRun stores the run outcome. Manifest errors are logged and never fail the run.
func (service *CoreService) RecordRun(startedAt time.Time, result *icons.Result, runErr error) {
	if result == nil || errors.Is(runErr, icons.ErrSourceNotFound) {
		return
	}
	databaseService, err := service.manifest()
	if err != nil {
		slog.Warn("failed to open manifest", "error", err)
		return
	}
	if databaseService == nil {
		return
	}

	runID, err := databaseService.CreateRun(&database.Run{
		SourcePath:   result.SourcePath,
		SourceSHA256: result.SourceSHA256,
		SourceWidth:  result.SourceWidth,
		SourceHeight: result.SourceHeight,
		StartedAt:    startedAt,
	})
	if err != nil {
		slog.Warn("failed to record run in manifest", "error", err)
		return
	}

	for _, asset := range result.Assets {
		if err := databaseService.AddAsset(runID, &database.Asset{
			Path:   asset.Path,
			Width:  asset.Width,
			Height: asset.Height,
			Bytes:  asset.Bytes,
			SHA256: asset.SHA256,
		}); err != nil {
			slog.Warn("failed to record asset in manifest", "run_id", runID, "path", asset.Path, "error", err)
		}
	}

	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	if err := databaseService.FinishRun(runID, runErr == nil, errMsg); err != nil {
		slog.Warn("failed to finish run in manifest", "run_id", runID, "error", err)
		return
	}
	slog.Debug("run recorded in manifest", "run_id", runID, "assets", len(result.Assets))
}

// manifest opens the configured database on first use. A nil service means no manifest is configured.
func (service *CoreService) manifest() (database.DatabaseService, error) {
	if service.databaseService != nil {
		return service.databaseService, nil
	}
	databaseService, err := getDatabaseService(service.config)
	if err != nil {
		return nil, err
	}
	service.databaseService = databaseService
	return databaseService, nil
}

func getDatabaseService(config *ServiceConfig) (database.DatabaseService, error) {
	databaseService, err := database.NewDatabase(config.Database.Type, config.Database.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if databaseService != nil {
		slog.Info("manifest database initialized", "type", config.Database.Type)
	}
	return databaseService, nil
}
