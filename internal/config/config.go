package config

import (
	"basket-reconciler/internal/spatial"
)

// Default layer names.
const (
	DefaultCageLabelsLayer    = "!!!SOL-Opisy klatek"
	DefaultBasketNumbersLayer = "!!!SOL-nr koszy"
	DefaultSectionsLayer      = "!!!SOL-Opisy sekcji"
	DefaultBasketsLayer       = "PRT_MOD_TXT"
	DefaultWallsLayer         = "A-WALL-____-IDEN"
	DefaultCoefficientsLayer  = "PRT_WSP_ZBR"
	DefaultAreasLayer         = "0"
)

// Defaults for the remaining keys.
const (
	DefaultChapterRadius  = 10.0
	DefaultTextHeight     = 2.5
	DefaultLogLevel       = "info"
	DefaultChaptersOutput = "TME1.xlsx"
	DefaultWallsOutput    = "RevitDane.xlsx"
)

// Config is the root of a configuration file.
type Config struct {
	Version string  `yaml:"version"`
	Layers  Layers  `yaml:"layers"`
	Search  Search  `yaml:"search"`
	Pairing Pairing `yaml:"pairing"`
	Walls   Walls   `yaml:"walls"`
	Text    Text    `yaml:"text"`
	Logging Logging `yaml:"logging"`
	Paths   Paths   `yaml:"paths"`
}

// Layers names the drawing layers every variant reads or writes.
type Layers struct {
	CageLabels    string `yaml:"cage_labels"`
	BasketNumbers string `yaml:"basket_numbers"`
	Sections      string `yaml:"sections"`
	Baskets       string `yaml:"baskets"`
	Walls         string `yaml:"walls"`
	Coefficients  string `yaml:"coefficients"`
	Areas         string `yaml:"areas"`
}

// Search holds the radii of the wall search and the chapter lookup.
type Search struct {
	StartRadius   float64 `yaml:"start_radius"`
	Step          float64 `yaml:"step"`
	MaxRadius     float64 `yaml:"max_radius"`
	ChapterRadius float64 `yaml:"chapter_radius"`
}

// Options converts s for spatial.FindIntersecting.
func (s Search) Options() spatial.SearchOptions {
	return spatial.SearchOptions{
		StartRadius: s.StartRadius,
		Step:        s.Step,
		MaxRadius:   s.MaxRadius,
	}
}

// Pairing configures the pairing variant.
type Pairing struct {
	// Flip turns generated labels upside down.
	Flip bool `yaml:"flip"`
}

// Walls configures the walls variant.
type Walls struct {
	// VisibleAreas draws search circles in red instead of by-layer.
	VisibleAreas bool `yaml:"visible_areas"`
}

// Text configures generated coefficient labels.
type Text struct {
	Height float64 `yaml:"height"`
}

// Logging configures the zap logger built by the CLI.
type Logging struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Level   string `yaml:"level"`
	// File is an extra output path next to stderr.
	File string `yaml:"file,omitempty"`
}

// IsEnabled reports whether logging is on. Unset means on.
func (l Logging) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

// Paths holds default input and output files.
type Paths struct {
	Dataset        string `yaml:"dataset,omitempty"`
	ChaptersOutput string `yaml:"chapters_output"`
	WallsOutput    string `yaml:"walls_output"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{
		Search: Search{
			StartRadius:   spatial.DefaultStartRadius,
			Step:          spatial.DefaultStep,
			MaxRadius:     spatial.DefaultMaxRadius,
			ChapterRadius: DefaultChapterRadius,
		},
		Text: Text{Height: DefaultTextHeight},
	}
	applyDefaults(cfg)

	return cfg
}
