package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"basket-reconciler/internal/diagnostic"
)

// Validate checks values that defaults cannot repair.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	layers := []struct {
		key   string
		value string
	}{
		{"layers.cage_labels", cfg.Layers.CageLabels},
		{"layers.basket_numbers", cfg.Layers.BasketNumbers},
		{"layers.sections", cfg.Layers.Sections},
		{"layers.baskets", cfg.Layers.Baskets},
		{"layers.walls", cfg.Layers.Walls},
		{"layers.coefficients", cfg.Layers.Coefficients},
		{"layers.areas", cfg.Layers.Areas},
	}

	for _, l := range layers {
		if l.value == "" {
			res.AddError(diagnostic.CodeInvalidConfig, "layer name is empty", "", l.key)
		}
	}

	s := cfg.Search
	if s.StartRadius < 0 {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("start radius %g is negative", s.StartRadius), "", "search.start_radius")
	}

	if s.MaxRadius < s.StartRadius {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("max radius %g is below start radius %g", s.MaxRadius, s.StartRadius), "", "search.max_radius")
	}

	if s.Step <= 0 {
		res.AddWarning(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("step %g is not positive, only the start radius is searched", s.Step), "", "search.step")
	}

	if s.ChapterRadius <= 0 {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("chapter radius %g must be positive", s.ChapterRadius), "", "search.chapter_radius")
	}

	if cfg.Text.Height <= 0 {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("text height %g must be positive", cfg.Text.Height), "", "text.height")
	}

	if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
		res.AddError(diagnostic.CodeInvalidConfig, err.Error(), "", "logging.level")
	}

	return res
}
