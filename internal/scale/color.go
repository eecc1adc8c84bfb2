package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for color strings that are not #rgb or #rrggbb.
var ErrInvalidColor = errors.New("invalid color")

// RGB is an sRGB color.
type RGB struct {
	R, G, B uint8
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Mix interpolates channel-wise between a and b. t is clamped to [0, 1].
func Mix(a, b RGB, t float64) RGB {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// Color maps word counts to colors: a log scale onto [0, 1] followed by RGB
// interpolation between the two endpoint colors.
type Color struct {
	t     Log
	start RGB
	end   RGB
}

// NewColor builds a color scale over the word-count domain [d0, d1].
func NewColor(d0, d1 float64, start, end RGB) (Color, error) {
	t, err := NewLog(d0, d1, 0, 1)
	if err != nil {
		return Color{}, err
	}
	return Color{t: t, start: start, end: end}, nil
}

// At returns the color of v.
func (c Color) At(v float64) RGB {
	return Mix(c.start, c.end, c.t.At(v))
}
