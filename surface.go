package vidar

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Surface is the 1x1 fill-and-readback region ParseColor samples from.
// The contract mirrors a drawing canvas: clear the region, set a fill
// style from a string, fill, and read the pixel's four channels back.
//
// SetFillStyle must leave the prior fill state untouched when the style
// string cannot be interpreted.
type Surface interface {
	Clear()
	SetFillStyle(style string)
	Fill()
	Pixel() (r, g, b, a uint8)
}

// canvasSurface renders fill styles onto a 1x1 gg pixmap. The initial
// fill style is opaque black, like a fresh canvas context.
type canvasSurface struct {
	pixmap *gg.Pixmap
	dc     *gg.Context
	fill   gg.RGBA
}

// NewCanvasSurface creates the default gg-backed parsing surface. It
// understands #hex, rgb()/rgba(), hsl()/hsla(), named CSS colors and
// the "transparent" keyword.
func NewCanvasSurface() Surface {
	pm := gg.NewPixmap(1, 1)
	return &canvasSurface{
		pixmap: pm,
		dc:     gg.NewContext(1, 1, gg.WithPixmap(pm)),
		fill:   gg.Black,
	}
}

func (s *canvasSurface) Clear() {
	s.dc.ClearWithColor(gg.Transparent)
}

func (s *canvasSurface) SetFillStyle(style string) {
	if c, ok := parseFillStyle(style); ok {
		s.fill = c
	}
}

func (s *canvasSurface) Fill() {
	s.dc.SetColor(s.fill.Color())
	s.dc.DrawRectangle(0, 0, 1, 1)
	_ = s.dc.Fill()
}

func (s *canvasSurface) Pixel() (r, g, b, a uint8) {
	c := s.pixmap.GetPixel(0, 0)
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// parseFillStyle interprets a CSS-style color string. It reports false
// for anything it cannot interpret, leaving fill-state decisions to the
// caller.
func parseFillStyle(style string) (gg.RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(style))
	switch {
	case s == "":
		return gg.RGBA{}, false
	case s == "transparent":
		return gg.Transparent, true
	case s[0] == '#':
		return parseHexStyle(s)
	case strings.HasSuffix(s, ")"):
		return parseFuncStyle(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{}, false
}

func parseHexStyle(s string) (gg.RGBA, bool) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		ok := '0' <= c && c <= '9' || 'a' <= c && c <= 'f'
		if !ok {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(s), true
}

// parseFuncStyle handles rgb(), rgba(), hsl() and hsla() notations.
func parseFuncStyle(s string) (gg.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return gg.RGBA{}, false
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch name {
	case "rgb", "rgba":
		wantAlpha := name == "rgba"
		if len(args) != 3+boolToInt(wantAlpha) {
			return gg.RGBA{}, false
		}
		var ch [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return gg.RGBA{}, false
			}
			ch[i] = clamp01(v / 255)
		}
		a := 1.0
		if wantAlpha {
			v, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return gg.RGBA{}, false
			}
			a = clamp01(v)
		}
		return gg.RGBA2(ch[0], ch[1], ch[2], a), true

	case "hsl", "hsla":
		wantAlpha := name == "hsla"
		if len(args) != 3+boolToInt(wantAlpha) {
			return gg.RGBA{}, false
		}
		h, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return gg.RGBA{}, false
		}
		sat, ok := parsePercent(args[1])
		if !ok {
			return gg.RGBA{}, false
		}
		light, ok := parsePercent(args[2])
		if !ok {
			return gg.RGBA{}, false
		}
		c := gg.HSL(h, sat, light)
		if wantAlpha {
			v, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return gg.RGBA{}, false
			}
			c.A = clamp01(v)
		}
		return c, true
	}
	return gg.RGBA{}, false
}

func parsePercent(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return clamp01(v / 100), true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
