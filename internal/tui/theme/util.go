package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0)
func InterpolateColor(colorA, colorB string, pos float64) string {
	a, err := colorful.Hex(colorA)
	if err != nil {
		return colorB
	}
	b, err := colorful.Hex(colorB)
	if err != nil {
		return colorA
	}
	return a.BlendLab(b, min(max(pos, 0), 1)).Clamped().Hex()
}

// Gradient renders text with each rune colored along a blend from colorA to colorB.
func Gradient(text, colorA, colorB string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(InterpolateColor(colorA, colorB, pos))).Bold(true)
		sb.WriteString(style.Render(string(r)))
	}
	return sb.String()
}
