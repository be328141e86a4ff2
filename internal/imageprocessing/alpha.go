package imageprocessing

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// HasAlpha reports whether the image's color model can carry transparency.
func HasAlpha(img image.Image) bool {
	switch img.ColorModel() {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true
	}
	if p, ok := img.(*image.Paletted); ok {
		for _, c := range p.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// EnsureAlpha returns img as non-premultiplied RGBA. NRGBA input is returned as is;
// every other model (gray, YCbCr, CMYK, paletted, premultiplied RGBA) is converted.
func EnsureAlpha(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}
