package tui

import (
	"fmt"
	"image/color"

	"github.com/mark3labs/wheelr/internal/config"
	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/scroller"
)

// Options configures a Pane's engine and decorations.
type Options struct {
	VisibleItems   int
	Cyclic         bool
	RowScale       int // virtual pixels per terminal row
	Interpolator   scroller.Interpolator
	FlingThreshold float64
	DrawShadows    bool
	ShadowColor    color.Color
	DrawHighlight  bool
	HighlightColor color.Color
	DrawDivider    bool
}

// OptionsFromConfig converts loaded configuration into pane options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	shadow, err := gfx.ParseHex(cfg.ShadowColor)
	if err != nil {
		return Options{}, fmt.Errorf("shadow_color: %w", err)
	}
	highlight, err := gfx.ParseHex(cfg.HighlightColor)
	if err != nil {
		return Options{}, fmt.Errorf("highlight_color: %w", err)
	}
	interp, err := scroller.ParseInterpolator(cfg.Interpolator)
	if err != nil {
		return Options{}, fmt.Errorf("interpolator: %w", err)
	}
	return Options{
		VisibleItems:   cfg.VisibleItems,
		Cyclic:         cfg.Cyclic,
		RowScale:       cfg.RowScale,
		Interpolator:   interp,
		FlingThreshold: cfg.FlingThreshold,
		DrawShadows:    cfg.DrawShadows,
		ShadowColor:    shadow,
		DrawHighlight:  cfg.DrawHighlight,
		HighlightColor: highlight,
		DrawDivider:    cfg.DrawDivider,
	}, nil
}
