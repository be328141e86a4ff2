package imageprocessing

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultSVGRenderSize is the edge length used for SVG sources without explicit dimensions
	DefaultSVGRenderSize = 1024
	// MaxSVGRenderSize is the largest accepted fallback edge length.
	MaxSVGRenderSize = 16384
	// MinSVGSizeLimit is the smallest cap applied to explicit SVG dimensions.
	MinSVGSizeLimit = 4096
	// MaxSourcePixels bounds the canvas a raster header may ask for.
	MaxSourcePixels = MaxSVGRenderSize * MaxSVGRenderSize
)

// Decode decodes raster data in any registered format (png, jpeg, gif, bmp, tiff, webp)
// and rasterizes SVG documents onto a transparent canvas. The returned string is the
// format name.
func Decode(data []byte, svgFallbackSize int) (image.Image, string, error) {
	slog.Debug("decoding image", "input_size_bytes", len(data))

	if isSVGData(data) {
		img, err := decodeSVG(data, svgFallbackSize)
		if err != nil {
			return nil, "", err
		}
		return img, "svg", nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxSourcePixels/cfg.Height {
		return nil, "", fmt.Errorf("image dimensions %dx%d exceed the %d pixel limit", cfg.Width, cfg.Height, MaxSourcePixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	slog.Debug("decoded raster image",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return img, format, nil
}

func decodeSVG(data []byte, fallbackSize int) (image.Image, error) {
	w, h, ok := parseSvgExplicitSize(data)
	if !ok {
		if fallbackSize <= 0 {
			return nil, fmt.Errorf("SVG has no explicit size and no fallback size is set")
		}
		slog.Debug("SVG lacks explicit size; using fallback", "size", fallbackSize)
		w, h = fallbackSize, fallbackSize
	}
	limit := max(fallbackSize, MinSVGSizeLimit)
	if w > limit || h > limit {
		return nil, fmt.Errorf("SVG size %dx%d exceeds the %dx%d limit", w, h, limit, limit)
	}
	return renderSVG(data, w, h)
}

// renderSVG rasterizes an SVG document into a w x h transparent canvas.
func renderSVG(svgData []byte, targetW, targetH int) (img *image.RGBA, err error) {
	// oksvg and rasterx panic on some malformed paths
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("failed to render SVG: %v", r)
		}
	}()

	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("invalid target dimensions for SVG rendering: %dx%d", targetW, targetH)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	icon.SetTarget(0, 0, float64(targetW), float64(targetH))

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	scanner := rasterx.NewScannerGV(targetW, targetH, dst, dst.Bounds())
	dasher := rasterx.NewDasher(targetW, targetH, scanner)
	icon.Draw(dasher, 1.0)

	return dst, nil
}

// isSVGData performs a lightweight detection of SVG content from raw bytes.
// Only the first 4KB are inspected.
func isSVGData(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	n := len(data)
	if n > 4096 {
		n = 4096
	}
	header := bytes.ToLower(bytes.TrimSpace(data[:n]))
	return bytes.Contains(header, []byte("<svg")) ||
		bytes.Contains(header, []byte("xmlns=\"http://www.w3.org/2000/svg\"")) ||
		bytes.Contains(header, []byte("xmlns='http://www.w3.org/2000/svg'"))
}

// parseSvgExplicitSize extracts width and height attributes from the root <svg> tag.
// A viewBox alone is not treated as a pixel size.
func parseSvgExplicitSize(data []byte) (int, int, bool) {
	n := len(data)
	if n > 8192 {
		n = 8192
	}
	s := strings.ToLower(string(data[:n]))
	i := strings.Index(s, "<svg")
	if i < 0 {
		return 0, 0, false
	}
	j := strings.Index(s[i:], ">")
	if j < 0 {
		j = len(s)
	} else {
		j = i + j
	}
	tag := s[i:j]

	w, wOk := parseNumericAttr(tag, "width")
	h, hOk := parseNumericAttr(tag, "height")
	if wOk && hOk {
		return w, h, true
	}
	return 0, 0, false
}

// maxSVGAttrValue keeps parsed attribute values from overflowing int
const maxSVGAttrValue = 1 << 30

// parseNumericAttr extracts the leading integer of a quoted attribute value (e.g. width="123px").
func parseNumericAttr(tag, attr string) (int, bool) {
	pos := -1
	for from := 0; from < len(tag); {
		k := strings.Index(tag[from:], attr)
		if k < 0 {
			break
		}
		k += from
		// must be a standalone attribute name, not the tail of e.g. stroke-width
		if k == 0 || tag[k-1] == ' ' || tag[k-1] == '\t' || tag[k-1] == '\n' || tag[k-1] == '\r' {
			pos = k + len(attr)
			break
		}
		from = k + len(attr)
	}
	if pos < 0 {
		return 0, false
	}

	rest := strings.TrimLeft(tag[pos:], " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return 0, false
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")
	if rest == "" || (rest[0] != '"' && rest[0] != '\'') {
		return 0, false
	}
	quote := rest[0]
	val := rest[1:]
	if end := strings.IndexByte(val, quote); end >= 0 {
		val = val[:end]
	}

	num := 0
	found := false
	for i := 0; i < len(val); i++ {
		ch := val[i]
		if ch >= '0' && ch <= '9' {
			found = true
			if num > maxSVGAttrValue {
				continue
			}
			num = num*10 + int(ch-'0')
		} else if found || ch != ' ' {
			break
		}
	}
	if !found || num <= 0 {
		return 0, false
	}
	return num, true
}
