// Package properties provides composite animatable value types: a 4-channel
// [Color] and a 7-component 2D [Transform]. Both satisfy the motion
// package's Animatable constraint and can drive any engine kind, e.g.
// motion.Value[properties.Color].
package properties

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an RGBA color with normalized components, each stored as a float
// between 0.0 and 1.0. The zero value is transparent black, which is also
// the type's animatable zero.
//
// The channel operations clamp back into range, so colors are best animated
// with tweens and keyframes; spring physics relies on unclamped intermediate
// terms and can fail to settle on clamping types.
type Color struct {
	// R is the red component (0.0-1.0).
	R float64
	// G is the green component (0.0-1.0).
	G float64
	// B is the blue component (0.0-1.0).
	B float64
	// A is the alpha component (0.0-1.0).
	A float64
}

// NewColor creates a color from normalized components, clamping each to
// [0, 1].
func NewColor(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// ColorFromRGBA creates a color from 8-bit components.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// ColorFromHex parses a hex color string. Supported formats: #RGB, #RGBA,
// #RRGGBB and #RRGGBBAA, with or without the leading '#'.
func ColorFromHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	alpha := 1.0
	switch len(s) {
	case 3:
		// Expand #RGB to #RRGGBB (0xA becomes 0xAA).
		s = expandShortHex(s)
	case 4:
		a, err := hexNibble(s[3])
		if err != nil {
			return Color{}, fmt.Errorf("parse hex color %q: %w", hex, err)
		}
		alpha = float64(a*17) / 255
		s = expandShortHex(s[:3])
	case 6:
		// Already canonical.
	case 8:
		var a uint8
		if _, err := fmt.Sscanf(s[6:8], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("parse hex color %q: %w", hex, err)
		}
		alpha = float64(a) / 255
		s = s[:6]
	default:
		return Color{}, fmt.Errorf("parse hex color %q: unsupported length %d", hex, len(s))
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// ColorNamed looks up an SVG 1.1 color name ("red", "cornflowerblue", ...).
func ColorNamed(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", name)
	}
	return ColorFromRGBA(c.R, c.G, c.B, c.A), nil
}

func expandShortHex(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}

// Predefined colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, A: 1}
	Green       = Color{G: 1, A: 1}
	Blue        = Color{B: 1, A: 1}
	Gray        = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// RGBA8 returns the color as 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(math.Round(c.R * 255)),
		uint8(math.Round(c.G * 255)),
		uint8(math.Round(c.B * 255)),
		uint8(math.Round(c.A * 255))
}

// CSSString returns the color as a CSS rgba() string.
func (c Color) CSSString() string {
	r, g, b, _ := c.RGBA8()
	alpha := math.Round(c.A*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %v)", r, g, b, alpha)
}

// HexString returns the color as #rrggbb, or #rrggbbaa when not fully
// opaque.
func (c Color) HexString() string {
	r, g, b, a := c.RGBA8()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Zero returns transparent black.
func (Color) Zero() Color { return Color{} }

// Epsilon returns the minimum meaningful difference between color
// components.
func (Color) Epsilon() float64 { return 0.001 }

// Magnitude returns the Euclidean norm of the channel vector.
func (c Color) Magnitude() float64 {
	return math.Sqrt(c.R*c.R + c.G*c.G + c.B*c.B + c.A*c.A)
}

// Scale multiplies each channel by factor, clamping back into range.
func (c Color) Scale(factor float64) Color {
	return NewColor(c.R*factor, c.G*factor, c.B*factor, c.A*factor)
}

// Add combines two colors channel-wise, clamping back into range.
func (c Color) Add(other Color) Color {
	return NewColor(c.R+other.R, c.G+other.G, c.B+other.B, c.A+other.A)
}

// Sub returns the channel-wise difference, clamping back into range.
func (c Color) Sub(other Color) Color {
	return NewColor(c.R-other.R, c.G-other.G, c.B-other.B, c.A-other.A)
}

// Lerp blends toward target in RGB space by t, clamping t to [0, 1].
func (c Color) Lerp(target Color, t float64) Color {
	t = clamp01(t)
	blended := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: target.R, G: target.G, B: target.B}, t)
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: c.A*(1-t) + target.A*t,
	}
}

// FromParameter maps a normalized parameter to a scaled transparent black.
func (Color) FromParameter(p float64) Color {
	return Color{}.Scale(p)
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
