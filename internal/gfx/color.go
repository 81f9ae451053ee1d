package gfx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" into a non-premultiplied color.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	a := uint8(0xff)
	if len(hex) == 8 {
		v, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		hex, a = hex[:6], uint8(v)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHex renders c as "#RRGGBB", or "#RRGGBBAA" when it is translucent.
func FormatHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// WithAlpha returns c with its alpha scaled by factor.
func WithAlpha(c color.Color, factor float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * factor)
	return n
}

// Alpha returns the alpha of c in [0, 1].
func Alpha(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.A) / 0xff
}

// Lerp blends a towards b by t in RGB space, alpha included.
func Lerp(a, b color.Color, t float64) color.NRGBA {
	if t <= 0 {
		return color.NRGBAModel.Convert(a).(color.NRGBA)
	}
	if t >= 1 {
		return color.NRGBAModel.Convert(b).(color.NRGBA)
	}
	ca, aa := opaque(a)
	cb, ab := opaque(b)
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8((aa + (ab-aa)*t) * 0xff)}
}

// Over composites src over dst and returns an opaque result.
func Over(dst, src color.Color) color.NRGBA {
	cd, _ := opaque(dst)
	cs, as := opaque(src)
	r, g, b := cd.BlendRgb(cs, as).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func opaque(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float64(n.A) / 255
}
