package imageprocessing

import (
	"image"
	"image/color"
	"testing"
)

func TestNewForegroundCommand_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
	}{
		{"Missing canvas", map[string]any{"innerSize": 288}},
		{"Missing inner", map[string]any{"canvasSize": 432}},
		{"Inner larger than canvas", map[string]any{"canvasSize": 100, "innerSize": 200}},
		{"Zero inner", map[string]any{"canvasSize": 432, "innerSize": 0}},
		{"Unknown filter", map[string]any{"canvasSize": 432, "innerSize": 288, "filter": "box"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewForegroundCommand(tt.params); err == nil {
				t.Errorf("Expected error for params %v", tt.params)
			}
		})
	}
}

func TestForegroundCommand_Offset(t *testing.T) {
	command, err := NewForegroundCommandWithParams(432, 288, "")
	if err != nil {
		t.Fatalf("Failed to create command: %v", err)
	}
	if offset := command.Offset(); offset != image.Pt(72, 72) {
		t.Errorf("Expected offset (72,72), got %v", offset)
	}
}

func TestForegroundCommand_Execute_TransparentBorder(t *testing.T) {
	command, err := NewForegroundCommand(map[string]any{"canvasSize": 432, "innerSize": 288})
	if err != nil {
		t.Fatalf("Failed to create command: %v", err)
	}

	result, err := command.Execute(newUniformImage(1024, 1024, color.NRGBA{255, 0, 0, 255}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Bounds().Dx() != 432 || result.Bounds().Dy() != 432 {
		t.Fatalf("Expected 432x432, got %dx%d", result.Bounds().Dx(), result.Bounds().Dy())
	}

	inner := image.Rect(72, 72, 360, 360)
	for y := 0; y < 432; y++ {
		for x := 0; x < 432; x++ {
			a := result.NRGBAAt(x, y).A
			if image.Pt(x, y).In(inner) {
				if a < 250 {
					t.Fatalf("Expected opaque pixel inside content at (%d,%d), got alpha %d", x, y, a)
				}
			} else if a != 0 {
				t.Fatalf("Expected transparent pixel outside content at (%d,%d), got alpha %d", x, y, a)
			}
		}
	}
}

func TestForegroundCommand_Execute_KeepsSourceTransparency(t *testing.T) {
	// left half opaque, right half transparent
	src := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 100; x++ {
			src.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	command, err := NewForegroundCommandWithParams(432, 288, "lanczos")
	if err != nil {
		t.Fatalf("Failed to create command: %v", err)
	}
	result, err := command.Execute(src)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if a := result.NRGBAAt(100, 216).A; a < 250 {
		t.Errorf("Expected opaque pixel in left content half, got alpha %d", a)
	}
	if a := result.NRGBAAt(330, 216).A; a != 0 {
		t.Errorf("Expected transparent pixel in right content half, got alpha %d", a)
	}
}
