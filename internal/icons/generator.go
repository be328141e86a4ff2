package icons

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jo-hoe/launchericons/internal/imageprocessing"
)

// StalePolicy decides what happens when a stale XML descriptor cannot be removed.
type StalePolicy string

const (
	StalePolicyWarn StalePolicy = "warn"
	StalePolicyFail StalePolicy = "fail"
)

// RunRecorder is notified after every run that got past the source check.
type RunRecorder interface {
	RecordRun(startedAt time.Time, result *Result, runErr error)
}

// Options configures a Generator.
type Options struct {
	SourceImage           string
	ResourceRoot          string
	Filter                string
	CompressionLevel      png.CompressionLevel
	SVGRenderSize         int
	StaleDescriptorPolicy StalePolicy
	// Recorder is optional.
	Recorder RunRecorder
}

// Asset describes a written PNG.
type Asset struct {
	Path   string
	Width  int
	Height int
	Bytes  int
	SHA256 string
}

// Result collects what a run produced. On failure it holds everything done before the error.
type Result struct {
	SourcePath   string
	SourceFormat string
	SourceSHA256 string
	SourceWidth  int
	SourceHeight int
	Assets       []Asset
	Removed      []string
}

type plannedAsset struct {
	folder     string
	fileName   string
	descriptor string
	commands   []imageprocessing.Command
	// the foreground descriptor is removed after its PNG is in place
	removeStaleAfterWrite bool
}

// Generator writes the launcher icon set for one source image.
type Generator struct {
	options Options
	plan    []plannedAsset
}

// NewGenerator validates the options and prepares the resize commands for every output.
func NewGenerator(options Options) (*Generator, error) {
	if options.SourceImage == "" {
		return nil, fmt.Errorf("source image path must be set")
	}
	if options.ResourceRoot == "" {
		return nil, fmt.Errorf("resource root must be set")
	}
	if options.Filter == "" {
		options.Filter = imageprocessing.DefaultFilter
	}
	if options.SVGRenderSize <= 0 {
		options.SVGRenderSize = imageprocessing.DefaultSVGRenderSize
	}
	if options.SVGRenderSize > imageprocessing.MaxSVGRenderSize {
		return nil, fmt.Errorf("svg render size %d exceeds %d", options.SVGRenderSize, imageprocessing.MaxSVGRenderSize)
	}
	switch options.StaleDescriptorPolicy {
	case "":
		options.StaleDescriptorPolicy = StalePolicyWarn
	case StalePolicyWarn, StalePolicyFail:
	default:
		return nil, fmt.Errorf("unsupported stale descriptor policy: %s", options.StaleDescriptorPolicy)
	}

	plan := make([]plannedAsset, 0, len(LauncherIcons)+1)
	for _, spec := range LauncherIcons {
		commands, err := imageprocessing.NewCommands([]imageprocessing.CommandConfig{
			{Name: "ScaleCommand", Params: map[string]any{"size": spec.Size, "filter": options.Filter}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to prepare %s: %w", spec.Folder, err)
		}
		plan = append(plan, plannedAsset{
			folder:     spec.Folder,
			fileName:   LauncherFileName,
			descriptor: LauncherDescriptorName,
			commands:   commands,
		})
	}

	foreground, err := imageprocessing.NewCommands([]imageprocessing.CommandConfig{
		{Name: "ForegroundCommand", Params: map[string]any{
			"canvasSize": ForegroundCanvasSize,
			"innerSize":  ForegroundInnerSize,
			"filter":     options.Filter,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare foreground: %w", err)
	}
	plan = append(plan, plannedAsset{
		folder:                ForegroundFolder,
		fileName:              ForegroundFileName,
		descriptor:            ForegroundDescriptorName,
		commands:              foreground,
		removeStaleAfterWrite: true,
	})

	return &Generator{
		options: options,
		plan:    plan,
	}, nil
}

// GenerateIcons runs Generate and reports success. Errors are logged, never returned.
func (g *Generator) GenerateIcons() bool {
	if _, err := g.Generate(); err != nil {
		slog.Error("icon generation failed", "error", err)
		return false
	}
	return true
}

// Generate writes all launcher icons and the adaptive icon foreground.
// The first failure aborts the run. A missing source is not passed to the Recorder.
func (g *Generator) Generate() (*Result, error) {
	startedAt := time.Now()
	sourcePath := g.options.SourceImage
	result := &Result{SourcePath: sourcePath}

	slog.Info("opening source image", "path", sourcePath)
	if _, err := os.Stat(sourcePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return result, &AssetError{Op: "stat", Path: sourcePath, Err: err}
	}

	err := g.generate(result)
	if g.options.Recorder != nil {
		g.options.Recorder.RecordRun(startedAt, result, err)
	}
	return result, err
}

func (g *Generator) generate(result *Result) error {
	source, err := g.loadSource(result)
	if err != nil {
		return err
	}

	for _, asset := range g.plan {
		if err := g.produce(source, asset, result); err != nil {
			return err
		}
	}

	slog.Info("icon generation complete",
		"created", len(result.Assets),
		"removed", len(result.Removed))
	return nil
}

func (g *Generator) loadSource(result *Result) (*image.NRGBA, error) {
	data, err := os.ReadFile(result.SourcePath)
	if err != nil {
		return nil, &AssetError{Op: "read", Path: result.SourcePath, Err: err}
	}
	sum := sha256.Sum256(data)
	result.SourceSHA256 = hex.EncodeToString(sum[:])

	decoded, format, err := imageprocessing.Decode(data, g.options.SVGRenderSize)
	if err != nil {
		return nil, &AssetError{Op: "decode", Path: result.SourcePath, Err: err}
	}
	if decoded.Bounds().Empty() {
		return nil, &AssetError{Op: "decode", Path: result.SourcePath, Err: fmt.Errorf("image has no pixels")}
	}

	hadAlpha := imageprocessing.HasAlpha(decoded)
	source := imageprocessing.EnsureAlpha(decoded)

	result.SourceFormat = format
	result.SourceWidth = source.Bounds().Dx()
	result.SourceHeight = source.Bounds().Dy()
	slog.Info("source image size",
		"format", format,
		"width", result.SourceWidth,
		"height", result.SourceHeight,
		"converted_to_alpha", !hadAlpha)
	return source, nil
}

func (g *Generator) produce(source *image.NRGBA, asset plannedAsset, result *Result) error {
	dir := filepath.Join(g.options.ResourceRoot, asset.folder)
	outputPath := filepath.Join(dir, asset.fileName)
	descriptorPath := filepath.Join(dir, asset.descriptor)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return &AssetError{Op: "create directory", Path: dir, Err: err}
	}

	if !asset.removeStaleAfterWrite {
		if err := g.removeStaleDescriptor(descriptorPath, result); err != nil {
			return err
		}
	}

	img, err := imageprocessing.NewCommandInvoker(asset.commands).Execute(source)
	if err != nil {
		return &AssetError{Op: "resize", Path: outputPath, Err: err}
	}
	data, err := imageprocessing.EncodePNG(img, g.options.CompressionLevel)
	if err != nil {
		return &AssetError{Op: "encode", Path: outputPath, Err: err}
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return &AssetError{Op: "write", Path: outputPath, Err: err}
	}

	sum := sha256.Sum256(data)
	bounds := img.Bounds()
	result.Assets = append(result.Assets, Asset{
		Path:   outputPath,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
	})
	slog.Info("created",
		"path", outputPath,
		"width", bounds.Dx(),
		"height", bounds.Dy())

	if asset.removeStaleAfterWrite {
		return g.removeStaleDescriptor(descriptorPath, result)
	}
	return nil
}

// removeStaleDescriptor deletes an XML icon descriptor superseded by the PNG.
// A missing descriptor is not an error.
func (g *Generator) removeStaleDescriptor(path string, result *Result) error {
	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := os.Remove(path); err != nil {
		if g.options.StaleDescriptorPolicy == StalePolicyFail {
			return &AssetError{Op: "remove", Path: path, Err: err}
		}
		slog.Warn("could not remove stale descriptor", "path", path, "error", err)
		return nil
	}

	result.Removed = append(result.Removed, path)
	slog.Info("removed", "path", path)
	return nil
}
