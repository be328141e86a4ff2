package imageprocessing

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

var compressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

// ParseCompressionLevel maps a config value to a PNG compression level.
// An empty value selects the default level.
func ParseCompressionLevel(s string) (png.CompressionLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return png.DefaultCompression, nil
	}
	level, ok := compressionLevels[s]
	if !ok {
		return png.DefaultCompression, fmt.Errorf("unsupported compression level %q", s)
	}
	return level, nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	bb := img.Bounds()
	// rough heuristic: 1 byte per pixel
	buf.Grow(bb.Dx() * bb.Dy())
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return nil, fmt.Errorf("failed to encode PNG image: %w", err)
	}
	return buf.Bytes(), nil
}
