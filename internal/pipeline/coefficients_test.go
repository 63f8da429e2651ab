package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"basket-reconciler/internal/config"
	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/match"
)

func TestCoefficients(t *testing.T) {
	snap := snapshot(
		text(config.DefaultSectionsLayer, "P2.02", 0, 0),
		text(config.DefaultSectionsLayer, "X9", 100, 0),
		text(config.DefaultSectionsLayer, "Z1", 200, 0),
		text(config.DefaultSectionsLayer, "EMPTY", 500, 0),
		text(config.DefaultBasketsLayer, "K1", 1, 0),
		text(config.DefaultBasketsLayer, "K3", 101, 0),
		text(config.DefaultBasketsLayer, "K99", 201, 0),
	)
	tbl := table(
		match.Row{Section: "P2.02", Baskets: []string{"K1", "K2"}, Coefficient: 1.5, Line: 2},
		match.Row{Section: "Q1.01", Baskets: []string{"K3"}, Coefficient: 2, Line: 3},
	)

	core, logs := observer.New(zapcore.InfoLevel)

	out, err := Coefficients(snap, tbl, Options{Logger: zap.New(core)})
	require.NoError(t, err)
	require.Len(t, out.Records, 3)

	p2 := out.Records[0]
	assert.Equal(t, "P2.02", p2.Section)
	assert.Equal(t, "1.50", p2.Coefficient)
	assert.Equal(t, match.PhaseSecondary, p2.Phase)
	assert.Equal(t, []string{"K1", "K2"}, p2.Baskets)

	x9 := out.Records[1]
	assert.Equal(t, "2.00", x9.Coefficient)
	assert.Equal(t, match.PhaseBasketOnly, x9.Phase)

	z1 := out.Records[2]
	assert.False(t, z1.Matched())
	assert.Empty(t, z1.Coefficient, "no match is empty, never 0.00")

	rep := out.Report
	assert.Equal(t, 3, rep.Inputs)
	assert.Equal(t, 2, rep.Matched)
	assert.Equal(t, 1, rep.Unmatched)
	assert.Equal(t, 1, rep.Diagnostics.Count(diagnostic.CodeBasketOnlyMatch))

	require.Equal(t, 1, rep.Diagnostics.Count(diagnostic.CodeNoMatch))

	for _, d := range rep.Diagnostics.Warnings {
		if d.Code == diagnostic.CodeNoMatch {
			assert.Equal(t, "Z1", d.Subject)
			assert.Equal(t, []string{"Q1.01"}, d.Suggestions)
		}
	}

	assert.Equal(t, []string{"1.50", "2.00"}, textsOf(out.Annotations))
	assert.Equal(t, config.DefaultCoefficientsLayer, out.Annotations[0].Layer)
	assert.InDelta(t, config.DefaultTextHeight, out.Annotations[0].Height, 1e-12)

	require.NotNil(t, out.Sheet)
	assert.Equal(t, 1, out.Sheet.Flagged())

	assert.Equal(t, 1, logs.FilterMessage("basket-only match").Len())
	assert.Equal(t, 1, logs.FilterMessage("run finished").Len())

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.Contains(t, rep.Summary(), rep.RunID)
}

func TestCoefficients_EqualKeysPreferPrimary(t *testing.T) {
	// "P2.12" reads as P12 under both normalizations; the tie keeps the
	// primary lookup.
	snap := snapshot(
		text(config.DefaultSectionsLayer, "P2.12", 0, 0),
		text(config.DefaultBasketsLayer, "K1", 5, 0),
		text(config.DefaultBasketsLayer, "K2", 1, 0),
	)
	tbl := table(
		match.Row{Section: "P1.12", Baskets: []string{"K1"}, Coefficient: 1, Line: 2},
		match.Row{Section: "P12", Baskets: []string{"K2"}, Coefficient: 3, Line: 3},
		match.Row{Section: "P1.13", Baskets: []string{"K2"}, Coefficient: 7, Line: 4},
	)

	out, err := Coefficients(snap, tbl, Options{})
	require.NoError(t, err)
	require.Len(t, out.Records, 1)

	assert.Equal(t, "4.00", out.Records[0].Coefficient)
	assert.Equal(t, match.PhasePrimary, out.Records[0].Phase)
}

func TestCoefficients_NoSections(t *testing.T) {
	snap := snapshot(text(config.DefaultBasketsLayer, "K1", 1, 0))

	out, err := Coefficients(snap, table(), Options{})
	require.NoError(t, err)

	assert.Empty(t, out.Records)
	assert.Equal(t, 1, out.Report.Diagnostics.Count(diagnostic.CodeNoAnchor))
}

func TestCoefficients_MissingInputs(t *testing.T) {
	_, err := Coefficients(nil, table(), Options{})
	require.Error(t, err)

	_, err = Coefficients(snapshot(), nil, Options{})
	require.ErrorIs(t, err, dataset.ErrMissingInput)
}

func TestCoefficients_CarriesDatasetDiagnostics(t *testing.T) {
	tbl := table()
	tbl.Diagnostics.AddWarning(diagnostic.CodeUnparsableRow, "coefficient is empty", "P1", "line 3")
	tbl.Skipped = 2

	out, err := Coefficients(snapshot(), tbl, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Report.Diagnostics.Count(diagnostic.CodeUnparsableRow))
	assert.Equal(t, 2, out.Report.SkippedRows)
	assert.Contains(t, out.Report.Summary(), "2 dataset rows skipped")
}
