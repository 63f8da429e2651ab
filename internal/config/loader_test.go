package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/spatial"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
layers:
  sections: SECTIONS
  baskets: BASKETS
search:
  max_radius: 4
  chapter_radius: 2.5
pairing:
  flip: true
walls:
  visible_areas: true
logging:
  enabled: false
  level: debug
paths:
  dataset: data/TME.xlsx
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "SECTIONS", cfg.Layers.Sections)
	assert.Equal(t, "BASKETS", cfg.Layers.Baskets)
	// Unset layers fall back to defaults
	assert.Equal(t, DefaultWallsLayer, cfg.Layers.Walls)
	assert.Equal(t, DefaultCoefficientsLayer, cfg.Layers.Coefficients)

	assert.Equal(t, spatial.SearchOptions{StartRadius: 0.2, Step: 0.2, MaxRadius: 4}, cfg.Search.Options())
	assert.InDelta(t, 2.5, cfg.Search.ChapterRadius, 1e-12)

	assert.True(t, cfg.Pairing.Flip)
	assert.True(t, cfg.Walls.VisibleAreas)

	assert.False(t, cfg.Logging.IsEnabled())
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Equal(t, "data/TME.xlsx", cfg.Paths.Dataset)
	assert.Equal(t, DefaultWallsOutput, cfg.Paths.WallsOutput)
}

func TestParse_ExplicitZero(t *testing.T) {
	cfg, err := Parse([]byte(`
search:
  start_radius: 0
  step: 0
`))
	require.NoError(t, err)

	assert.Equal(t, spatial.SearchOptions{StartRadius: 0, Step: 0, MaxRadius: spatial.DefaultMaxRadius}, cfg.Search.Options())
	assert.InDelta(t, DefaultChapterRadius, cfg.Search.ChapterRadius, 1e-12)

	res := Validate(cfg)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "search.step", res.Warnings[0].Location)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("layers: [not, a, map]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, DefaultCageLabelsLayer, cfg.Layers.CageLabels)
	assert.Equal(t, DefaultBasketNumbersLayer, cfg.Layers.BasketNumbers)
	assert.Equal(t, spatial.DefaultSearch(), cfg.Search.Options())
	assert.InDelta(t, DefaultTextHeight, cfg.Text.Height, 1e-12)
	assert.True(t, cfg.Logging.IsEnabled())
	assert.Equal(t, DefaultChaptersOutput, cfg.Paths.ChaptersOutput)

	assert.True(t, Validate(cfg).IsValid())
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		cfg := Default()
		cfg.Pairing.Flip = true
		cfg.Search.ChapterRadius = 7

		require.NoError(t, WriteFile(cfg, path))

		loaded, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errors   int
		warnings int
		location string
	}{
		{"valid", func(*Config) {}, 0, 0, ""},
		{"empty layer", func(c *Config) { c.Layers.Walls = "" }, 1, 0, "layers.walls"},
		{"max below start", func(c *Config) { c.Search.MaxRadius = 0.1 }, 1, 0, "search.max_radius"},
		{"negative step", func(c *Config) { c.Search.Step = -1 }, 0, 1, "search.step"},
		{"chapter radius", func(c *Config) { c.Search.ChapterRadius = -2 }, 1, 0, "search.chapter_radius"},
		{"text height", func(c *Config) { c.Text.Height = -1 }, 1, 0, "text.height"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, 1, 0, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			res := Validate(cfg)

			assert.Len(t, res.Errors, tt.errors)
			assert.Len(t, res.Warnings, tt.warnings)

			if tt.location != "" {
				all := res.All()
				require.NotEmpty(t, all)
				assert.Equal(t, tt.location, all[0].Location)
				assert.Equal(t, diagnostic.CodeInvalidConfig, all[0].Code)
			}
		})
	}

	assert.True(t, Validate(nil).HasErrors())
}
