package imageprocessing

import (
	"fmt"
	"image"
	"log/slog"
)

// ScaleParams represents typed parameters for scale command
type ScaleParams struct {
	Size   int
	Filter string
}

// NewScaleParamsFromMap creates ScaleParams from a generic map
func NewScaleParamsFromMap(params map[string]any) (*ScaleParams, error) {
	if err := validateRequiredParams(params, []string{"size"}); err != nil {
		return nil, err
	}

	size := getIntParam(params, "size", 0)
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}

	filter := getStringParam(params, "filter", DefaultFilter)
	if _, err := lookupResampler(filter); err != nil {
		return nil, err
	}

	return &ScaleParams{
		Size:   size,
		Filter: filter,
	}, nil
}

// ScaleCommand resizes an image to a size x size square
type ScaleCommand struct {
	name     string
	params   *ScaleParams
	resample resampler
}

// NewScaleCommand creates a new scale command from configuration parameters
func NewScaleCommand(params map[string]any) (Command, error) {
	typedParams, err := NewScaleParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return newScaleCommand(typedParams)
}

// NewScaleCommandWithParams creates a new scale command from concrete typed parameters
func NewScaleCommandWithParams(size int, filter string) (*ScaleCommand, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}
	return newScaleCommand(&ScaleParams{Size: size, Filter: filter})
}

func newScaleCommand(params *ScaleParams) (*ScaleCommand, error) {
	r, err := lookupResampler(params.Filter)
	if err != nil {
		return nil, err
	}
	return &ScaleCommand{
		name:     "ScaleCommand",
		params:   params,
		resample: r,
	}, nil
}

// Name returns the command name
func (c *ScaleCommand) Name() string {
	return c.name
}

// GetSize returns the configured edge length
func (c *ScaleCommand) GetSize() int {
	return c.params.Size
}

// GetParams returns the typed parameters
func (c *ScaleCommand) GetParams() *ScaleParams {
	return c.params
}

// Execute resizes the image; non-square sources are stretched to the square
func (c *ScaleCommand) Execute(img *image.NRGBA) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to scale")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("cannot scale empty image")
	}

	slog.Debug("ScaleCommand: resizing image",
		"original_width", bounds.Dx(),
		"original_height", bounds.Dy(),
		"target_size", c.params.Size,
		"filter", c.params.Filter)

	return c.resample(img, c.params.Size), nil
}

func init() {
	if err := DefaultRegistry.Register("ScaleCommand", NewScaleCommand); err != nil {
		panic(fmt.Sprintf("failed to register ScaleCommand: %v", err))
	}
}
