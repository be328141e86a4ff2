package imageprocessing

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// DefaultFilter is the resampling filter used when none is configured
const DefaultFilter = "lanczos"

// resampler scales src to a size x size square
type resampler func(src image.Image, size int) *image.NRGBA

func imagingResampler(filter imaging.ResampleFilter) resampler {
	return func(src image.Image, size int) *image.NRGBA {
		return imaging.Resize(src, size, size, filter)
	}
}

// xdrawCatmullRom scales with the x/image Catmull-Rom kernel instead of imaging's
func xdrawCatmullRom(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Nearest neighbour and linear filters are not offered.
var resamplers = map[string]resampler{
	"lanczos":     imagingResampler(imaging.Lanczos),
	"catmullrom":  imagingResampler(imaging.CatmullRom),
	"mitchell":    imagingResampler(imaging.MitchellNetravali),
	"xcatmullrom": xdrawCatmullRom,
}

// FilterNames returns the names of the supported resampling filters
func FilterNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupResampler(name string) (resampler, error) {
	if name == "" {
		name = DefaultFilter
	}
	r, ok := resamplers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported filter %q, expected one of %v", name, FilterNames())
	}
	return r, nil
}
