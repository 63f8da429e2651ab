package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"basket-reconciler/internal/config"
	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/result"
)

// suggestions attached to a no_match diagnostic.
const maxSuggestions = 3

var errNoSnapshot = errors.New("no drawing snapshot")

// Variant names a pipeline.
type Variant string

const (
	VariantPair         Variant = "pair"
	VariantCoefficients Variant = "coefficients"
	VariantChapters     Variant = "chapters"
	VariantWalls        Variant = "walls"
)

// Options carries the run configuration. Nil fields fall back to defaults
// and a no-op logger.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}

	return o.Config
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// Report summarizes one run.
type Report struct {
	RunID   string
	Variant Variant
	// Inputs counts the units processed: basket numbers, sections or walls.
	Inputs      int
	Matched     int
	Unmatched   int
	Annotations int
	// SkippedRows counts dataset records dropped for a blank section.
	SkippedRows int
	Diagnostics diagnostic.Diagnostics
}

func newReport(v Variant) *Report {
	return &Report{RunID: uuid.NewString(), Variant: v}
}

// Summary is a one-line description of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("run %s (%s): %d inputs, %d matched, %d unmatched, %d annotations, %d diagnostics, %d dataset rows skipped",
		r.RunID, r.Variant, r.Inputs, r.Matched, r.Unmatched, r.Annotations, r.Diagnostics.Len(), r.SkippedRows)
}

func (r *Report) readTable(table *dataset.Table) {
	r.SkippedRows = table.Skipped
	r.Diagnostics.Merge(table.Diagnostics)
}

func (r *Report) count(rec result.Record) {
	if rec.Matched() {
		r.Matched++
	} else {
		r.Unmatched++
	}
}

func (r *Report) log(log *zap.Logger) {
	log.Info("run finished",
		zap.String("run_id", r.RunID),
		zap.String("variant", string(r.Variant)),
		zap.Int("inputs", r.Inputs),
		zap.Int("matched", r.Matched),
		zap.Int("unmatched", r.Unmatched),
		zap.Int("annotations", r.Annotations),
		zap.Int("skipped_rows", r.SkippedRows),
		zap.Int("warnings", len(r.Diagnostics.Warnings)),
	)
}

// Outcome is everything a run produced.
type Outcome struct {
	Records []result.Record
	// Annotations are entities to import back into the drawing.
	Annotations []drawing.Entity
	// Sheet is the result table, nil for pairing.
	Sheet  *dataset.Sheet
	Report *Report
}

func checkInputs(snap *drawing.Snapshot, table *dataset.Table) error {
	if snap == nil {
		return errNoSnapshot
	}

	if table == nil {
		return fmt.Errorf("%w: no table loaded", dataset.ErrMissingInput)
	}

	return nil
}
