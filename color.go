package vidar

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/gg/cache"
)

// Color is an immutable RGBA color with 8-bit channels, as sampled back
// from the parsing surface.
type Color struct {
	R, G, B, A uint8
}

// ColorInterpolationKeys names the Color fields to blend when colors
// appear as keyframe values:
//
//	vidar.NewKeyframeSet(frames, vidar.WithInterpolationKeys(vidar.ColorInterpolationKeys...))
var ColorInterpolationKeys = []string{"R", "G", "B", "A"}

// String returns the canonical rendering "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// RGBA implements the standard color.Color interface, treating the
// channels as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// colorCache memoizes ParseColor results per distinct input string.
// Sharded and bounded, so long-running hosts parsing unbounded style
// strings do not grow without limit.
var colorCache = cache.NewSharded[string, Color](0, cache.StringHasher)

var (
	surfaceMu    sync.Mutex
	colorSurface Surface
)

// SetColorSurface installs the surface used by ParseColor and clears the
// memoization cache. Pass nil to restore the default gg-backed surface.
func SetColorSurface(s Surface) {
	surfaceMu.Lock()
	colorSurface = s
	surfaceMu.Unlock()
	colorCache.Clear()
}

// ParseColor interprets a CSS-style color string by clearing a 1x1
// surface, setting its fill style from the string, filling, and reading
// the pixel back. Results are cached per input string.
//
// Invalid strings are not rejected: the surface keeps its prior fill
// state, so the sampled pixel is whatever the surface defines (the
// default surface fills opaque black, matching a fresh canvas).
func ParseColor(s string) Color {
	return colorCache.GetOrCreate(s, func() Color {
		surfaceMu.Lock()
		defer surfaceMu.Unlock()
		if colorSurface == nil {
			colorSurface = NewCanvasSurface()
		}
		colorSurface.Clear()
		colorSurface.SetFillStyle(s)
		colorSurface.Fill()
		r, g, b, a := colorSurface.Pixel()
		return Color{R: r, G: g, B: b, A: a}
	})
}
