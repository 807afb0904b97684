package vidar

import (
	"fmt"
	"strconv"
	"strings"

	ggtext "github.com/gogpu/gg/text"
)

// Font is an immutable font declaration: a numeric size, its unit and a
// family name.
type Font struct {
	Size   float64
	Unit   string
	Family string
}

// String returns the canonical rendering "{size}{unit} {family}".
func (f Font) String() string {
	return fmt.Sprintf("%s%s %s", strconv.FormatFloat(f.Size, 'f', -1, 64), f.Unit, f.Family)
}

// Face creates a shaped text face from src at the font's size. Sizes in
// px convert to points at the conventional 96 DPI (1px = 0.75pt); any
// other unit passes the size through unchanged.
func (f Font) Face(src *ggtext.FontSource) ggtext.Face {
	size := f.Size
	if f.Unit == "px" {
		size *= 0.75
	}
	return src.Face(size)
}

// ParseFont parses a "{size}{unit} {family}" declaration, for example
// "16px Arial". The input must split into exactly two whitespace-separated
// tokens and the first token must start with a numeral; the remainder of
// that token is taken verbatim as the unit.
func ParseFont(s string) (Font, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 2 {
		return Font{}, &InvalidFormatError{Input: s}
	}

	numeral := leadingNumeral(tokens[0])
	if numeral == "" {
		return Font{}, &InvalidFormatError{Input: s}
	}
	size, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return Font{}, &InvalidFormatError{Input: s}
	}

	return Font{
		Size:   size,
		Unit:   tokens[0][len(numeral):],
		Family: tokens[1],
	}, nil
}

// leadingNumeral returns the longest prefix of s that reads as a plain
// decimal numeral (digits with at most one dot).
func leadingNumeral(s string) string {
	i := 0
	dot := false
	for i < len(s) {
		c := s[i]
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		i++
	}
	// A bare "." is not a numeral.
	if i == 1 && dot {
		return ""
	}
	return s[:i]
}
