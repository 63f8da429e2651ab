package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"basket-reconciler/internal/config"
	"basket-reconciler/internal/drawing"
)

const testDrawing = `
entities:
  - {kind: text, layer: "!!!SOL-Opisy sekcji", text: P1.02, position: [0, 0]}
  - {kind: text, layer: PRT_MOD_TXT, text: A1, position: [0.5, 0.5]}
  - kind: mtext
    layer: A-WALL-____-IDEN
    text: W1
    position: [0.5, 0.5, 0.5]
    bounds: {min: [0, 0, 0], max: [1, 1, 1]}
  - {kind: text, layer: "!!!SOL-Opisy klatek", text: A, position: [0, 5]}
  - {kind: text, layer: "!!!SOL-nr koszy", text: "3", position: [1, 5]}
`

const testConfig = `
logging:
  enabled: false
`

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), out.String())

	return out.String()
}

func setup(t *testing.T) (dir, cfg, snap, data string) {
	t.Helper()

	dir = t.TempDir()
	cfg = filepath.Join(dir, "config.yaml")
	snap = filepath.Join(dir, "drawing.yaml")
	data = filepath.Join(dir, "dataset.csv")

	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0o644))
	require.NoError(t, os.WriteFile(snap, []byte(testDrawing), 0o644))
	require.NoError(t, os.WriteFile(data, []byte("Section,B1,B2,B3,B4,Coefficient\nP1.02,A1,,,,\"1,5\"\n"), 0o644))

	return dir, cfg, snap, data
}

func TestChaptersThenWalls(t *testing.T) {
	dir, cfg, snap, data := setup(t)
	tme := filepath.Join(dir, "TME1.xlsx")
	revit := filepath.Join(dir, "RevitDane.xlsx")
	areas := filepath.Join(dir, "areas.yaml")

	out := run(t, "--config", cfg, "chapters", "--drawing", snap, "--dataset", data, "--output", tme)
	assert.Contains(t, out, "results written to "+tme)

	out = run(t, "--config", cfg, "walls", "--drawing", snap, "--dataset", tme,
		"--output", revit, "--annotations", areas, "--visible")
	assert.Contains(t, out, "(walls): 1 inputs, 1 matched")

	f, err := excelize.OpenFile(revit)
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows("Walls")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"P1.02", "A1", "", "", "", "1.50", "W1"}, rows[1])

	circles, err := drawing.LoadFile(areas)
	require.NoError(t, err)
	require.Len(t, circles.Entities, 1)
	assert.Equal(t, drawing.ColorRed, circles.Entities[0].Color)
}

func TestWallsReadsNewestChaptersOutput(t *testing.T) {
	dir, _, snap, data := setup(t)
	cfg := filepath.Join(dir, "paths.yaml")
	tme := filepath.Join(dir, "TME1.xlsx")
	newest := filepath.Join(dir, "TME1_1.xlsx")

	require.NoError(t, os.WriteFile(cfg, []byte(testConfig+"paths:\n  chapters_output: "+tme+"\n"), 0o644))

	run(t, "--config", cfg, "chapters", "--drawing", snap, "--dataset", data)
	out := run(t, "--config", cfg, "chapters", "--drawing", snap, "--dataset", data)
	assert.Contains(t, out, "results written to "+newest)

	out = run(t, "--config", cfg, "walls", "--drawing", snap, "--output", filepath.Join(dir, "walls.csv"), "--annotations", "")
	assert.Contains(t, out, "dataset read from "+newest+" (1 rows, 0 skipped)")
}

func TestPairThenCoefficients(t *testing.T) {
	dir, cfg, snap, data := setup(t)
	pairing := filepath.Join(dir, "pairing.yaml")
	labels := filepath.Join(dir, "coefficients.json")

	out := run(t, "--config", cfg, "pair", "--drawing", snap, "--annotations", pairing)
	assert.Contains(t, out, "annotations written to "+pairing)

	paired, err := drawing.LoadFile(pairing)
	require.NoError(t, err)
	require.Len(t, paired.Entities, 1)
	assert.Equal(t, "A3", paired.Entities[0].Text())

	out = run(t, "--config", cfg, "coefficients", "--drawing", snap, "--drawing", pairing,
		"--dataset", data, "--annotations", labels)
	assert.Contains(t, out, "(coefficients): 1 inputs, 1 matched")

	written, err := drawing.LoadFile(labels)
	require.NoError(t, err)
	require.Len(t, written.Entities, 1)
	assert.Equal(t, "1.50", written.Entities[0].Text())
	assert.Equal(t, config.DefaultCoefficientsLayer, written.Entities[0].Layer)
}

func TestMissingDataset(t *testing.T) {
	_, cfg, snap, _ := setup(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "chapters", "--drawing", snap, "--dataset", "nope.xlsx"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset not found")
}

func TestConfigCommand(t *testing.T) {
	dir, cfg, _, _ := setup(t)

	out := run(t, "--config", cfg, "config")
	assert.Contains(t, out, "!!!SOL-Opisy klatek")
	assert.Contains(t, out, "enabled: false")

	target := filepath.Join(dir, "new.yaml")
	out = run(t, "config", "init", target)
	assert.Contains(t, out, target)

	loaded, err := config.LoadFile(target)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestConfigWarnings(t *testing.T) {
	dir, _, _, _ := setup(t)
	cfg := filepath.Join(dir, "zero-step.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  enabled: false\nsearch:\n  step: 0\n"), 0o644))

	out := run(t, "--config", cfg, "config")
	assert.Contains(t, out, "config warning:")
	assert.Contains(t, out, "search.step")
	assert.Contains(t, out, "step: 0")
}

func TestNewLogger(t *testing.T) {
	off := false

	logger, err := newLogger(config.Logging{Enabled: &off, Level: "info"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))

	logger, err = newLogger(config.Logging{Level: "warn"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1), "verbose enables debug")

	_, err = newLogger(config.Logging{Level: "loud"}, false)
	require.Error(t, err)
}
