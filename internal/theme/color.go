package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit color packed as 0xAABBGGRR.
type Color uint32

// NewColor packs channels into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// colorful converts to a colorful.Color, dropping alpha.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// fromColorful packs a colorful.Color with the given alpha.
func fromColorful(c colorful.Color, alpha uint8) Color {
	r, g, b := c.Clamped().RGB255()
	return NewColor(r, g, b, alpha)
}

// FromHex parses "#rrggbb" or "#rrggbbaa" into a Color.
func FromHex(s string) (Color, error) {
	s = strings.TrimSpace(s)

	alpha := uint8(0xff)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(parsed, alpha), nil
}

// Blend mixes c toward other in Lab space by t in [0, 1]. Alpha blends
// linearly.
func (c Color) Blend(other Color, t float64) Color {
	mixed := c.colorful().BlendLab(other.colorful(), t)
	alpha := float64(c.A()) + (float64(other.A())-float64(c.A()))*t
	return fromColorful(mixed, uint8(alpha))
}

// Darken moves c toward black by t in [0, 1], keeping alpha.
func (c Color) Darken(t float64) Color {
	return fromColorful(c.colorful().BlendLab(colorful.Color{}, t), c.A())
}

// WithAlpha returns c with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00ffffff | uint32(a)<<24)
}
