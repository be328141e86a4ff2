package imageprocessing

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestParseCompressionLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected png.CompressionLevel
		wantErr  bool
	}{
		{"", png.DefaultCompression, false},
		{"default", png.DefaultCompression, false},
		{"BEST", png.BestCompression, false},
		{"speed", png.BestSpeed, false},
		{"none", png.NoCompression, false},
		{"ultra", png.DefaultCompression, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseCompressionLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if level != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, level)
			}
		})
	}
}

func TestEncodePNG_RoundTripKeepsAlpha(t *testing.T) {
	src := newUniformImage(12, 12, color.NRGBA{10, 20, 30, 0})
	src.SetNRGBA(6, 6, color.NRGBA{10, 20, 30, 255})

	data, err := EncodePNG(src, png.BestCompression)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Expected valid PNG, got %v", err)
	}
	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", a)
	}
	if _, _, _, a := decoded.At(6, 6).RGBA(); a != 0xffff {
		t.Errorf("Expected opaque center, got alpha %d", a)
	}
}
