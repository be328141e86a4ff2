package imageprocessing

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
)

// ForegroundParams represents typed parameters for the foreground command
type ForegroundParams struct {
	CanvasSize int
	InnerSize  int
	Filter     string
}

// NewForegroundParamsFromMap creates ForegroundParams from a generic map
func NewForegroundParamsFromMap(params map[string]any) (*ForegroundParams, error) {
	if err := validateRequiredParams(params, []string{"canvasSize", "innerSize"}); err != nil {
		return nil, err
	}

	canvasSize := getIntParam(params, "canvasSize", 0)
	innerSize := getIntParam(params, "innerSize", 0)
	if err := validateForegroundSizes(canvasSize, innerSize); err != nil {
		return nil, err
	}

	filter := getStringParam(params, "filter", DefaultFilter)
	if _, err := lookupResampler(filter); err != nil {
		return nil, err
	}

	return &ForegroundParams{
		CanvasSize: canvasSize,
		InnerSize:  innerSize,
		Filter:     filter,
	}, nil
}

func validateForegroundSizes(canvasSize, innerSize int) error {
	if canvasSize <= 0 {
		return fmt.Errorf("canvasSize must be positive, got %d", canvasSize)
	}
	if innerSize <= 0 {
		return fmt.Errorf("innerSize must be positive, got %d", innerSize)
	}
	if innerSize > canvasSize {
		return fmt.Errorf("innerSize %d exceeds canvasSize %d", innerSize, canvasSize)
	}
	return nil
}

// ForegroundCommand places a downscaled copy of the image in the center of a
// transparent square canvas, leaving the margin adaptive icon masks may clip.
type ForegroundCommand struct {
	name   string
	params *ForegroundParams
	scale  *ScaleCommand
}

// NewForegroundCommand creates a new foreground command from configuration parameters
func NewForegroundCommand(params map[string]any) (Command, error) {
	typedParams, err := NewForegroundParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return newForegroundCommand(typedParams)
}

// NewForegroundCommandWithParams creates a new foreground command from concrete typed parameters
func NewForegroundCommandWithParams(canvasSize, innerSize int, filter string) (*ForegroundCommand, error) {
	if err := validateForegroundSizes(canvasSize, innerSize); err != nil {
		return nil, err
	}
	return newForegroundCommand(&ForegroundParams{
		CanvasSize: canvasSize,
		InnerSize:  innerSize,
		Filter:     filter,
	})
}

func newForegroundCommand(params *ForegroundParams) (*ForegroundCommand, error) {
	scale, err := NewScaleCommandWithParams(params.InnerSize, params.Filter)
	if err != nil {
		return nil, err
	}
	return &ForegroundCommand{
		name:   "ForegroundCommand",
		params: params,
		scale:  scale,
	}, nil
}

// Name returns the command name
func (c *ForegroundCommand) Name() string {
	return c.name
}

// GetParams returns the typed parameters
func (c *ForegroundCommand) GetParams() *ForegroundParams {
	return c.params
}

// Offset returns the top-left position of the inner image on the canvas
func (c *ForegroundCommand) Offset() image.Point {
	o := computeCenterOffset(c.params.CanvasSize, c.params.InnerSize)
	return image.Pt(o, o)
}

// Execute scales the image to the inner size and composites it onto the canvas.
// The inner image's alpha acts as the paste mask.
func (c *ForegroundCommand) Execute(img *image.NRGBA) (*image.NRGBA, error) {
	inner, err := c.scale.Execute(img)
	if err != nil {
		return nil, fmt.Errorf("failed to scale foreground content: %w", err)
	}

	offset := c.Offset()
	slog.Debug("ForegroundCommand: centering image on canvas",
		"canvas_size", c.params.CanvasSize,
		"inner_size", c.params.InnerSize,
		"offset_x", offset.X,
		"offset_y", offset.Y)

	canvas := imaging.New(c.params.CanvasSize, c.params.CanvasSize, color.Transparent)
	return imaging.Overlay(canvas, inner, offset, 1.0), nil
}

func computeCenterOffset(canvasSize, innerSize int) int {
	return (canvasSize - innerSize) / 2
}

func init() {
	if err := DefaultRegistry.Register("ForegroundCommand", NewForegroundCommand); err != nil {
		panic(fmt.Sprintf("failed to register ForegroundCommand: %v", err))
	}
}
