package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"basket-reconciler/internal/config"
	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/pipeline"
)

var errNoDrawing = errors.New("at least one --drawing snapshot is required")

// ioFlags are the file flags shared by the variant commands.
type ioFlags struct {
	drawings    []string
	dataset     string
	output      string
	annotations string
}

func (f *ioFlags) bindDrawing(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.drawings, "drawing", "d", nil, "entity snapshot (.yaml or .json), repeatable")
}

func (f *ioFlags) bindDataset(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "coefficient dataset (.xlsx, .csv, .db)")
}

func (f *ioFlags) loadDrawing() (*drawing.Snapshot, error) {
	if len(f.drawings) == 0 {
		return nil, errNoDrawing
	}

	return drawing.LoadFiles(f.drawings...)
}

// loadDataset reads --dataset, or fallback when the flag is absent.
func (f *ioFlags) loadDataset(cmd *cobra.Command, fallback string) (*dataset.Table, error) {
	path := f.dataset
	if path == "" {
		path = fallback
	}

	if path == "" {
		return nil, fmt.Errorf("%w: no --dataset given", dataset.ErrMissingInput)
	}

	table, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "dataset read from %s (%d rows, %d skipped)\n", path, len(table.Rows), table.Skipped)

	return table, nil
}

// persist writes the outcome after the whole run succeeded.
func persist(cmd *cobra.Command, out *pipeline.Outcome, table, annotations string) error {
	w := cmd.OutOrStdout()

	if out.Sheet != nil && table != "" {
		path, err := dataset.Write(table, out.Sheet)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "results written to %s (%d rows, %d flagged)\n", path, len(out.Sheet.Rows), out.Sheet.Flagged())
	}

	if len(out.Annotations) > 0 && annotations != "" {
		path, err := dataset.UniquePath(annotations)
		if err != nil {
			return err
		}

		if err := drawing.WriteFile(path, out.Annotations); err != nil {
			return err
		}

		fmt.Fprintf(w, "annotations written to %s (%d entities)\n", path, len(out.Annotations))
	}

	return nil
}

func newPairCmd(a *app) *cobra.Command {
	var (
		f    ioFlags
		flip bool
	)

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Label basket numbers with the letters of their nearest cage label",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := f.loadDrawing()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("flip") {
				a.cfg.Pairing.Flip = flip
			}

			out, err := pipeline.Pair(snap, a.options())
			if err != nil {
				return err
			}

			if err := persist(cmd, out, "", f.annotations); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), out.Report, a.verbose)

			return nil
		},
	}

	f.bindDrawing(cmd)
	cmd.Flags().StringVar(&f.annotations, "annotations", "pairing.yaml", "where to write the generated labels")
	cmd.Flags().BoolVar(&flip, "flip", false, "turn generated labels upside down")

	return cmd
}

func newCoefficientsCmd(a *app) *cobra.Command {
	var f ioFlags

	cmd := &cobra.Command{
		Use:   "coefficients",
		Short: "Resolve the coefficient of every section from its assigned baskets",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := f.loadDrawing()
			if err != nil {
				return err
			}

			table, err := f.loadDataset(cmd, a.cfg.Paths.Dataset)
			if err != nil {
				return err
			}

			out, err := pipeline.Coefficients(snap, table, a.options())
			if err != nil {
				return err
			}

			if err := persist(cmd, out, f.output, f.annotations); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), out.Report, a.verbose)

			return nil
		},
	}

	f.bindDrawing(cmd)
	f.bindDataset(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "optional result table")
	cmd.Flags().StringVar(&f.annotations, "annotations", "coefficients.yaml", "where to write coefficient labels")

	return cmd
}

func newChaptersCmd(a *app) *cobra.Command {
	var f ioFlags

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "Export per-section coefficients found from nearby baskets",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := f.loadDrawing()
			if err != nil {
				return err
			}

			table, err := f.loadDataset(cmd, a.cfg.Paths.Dataset)
			if err != nil {
				return err
			}

			out, err := pipeline.Chapters(snap, table, a.options())
			if err != nil {
				return err
			}

			output := f.output
			if output == "" {
				output = a.cfg.Paths.ChaptersOutput
			}

			if err := persist(cmd, out, output, ""); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), out.Report, a.verbose)

			return nil
		},
	}

	f.bindDrawing(cmd)
	f.bindDataset(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "result table (default from config)")

	return cmd
}

func newWallsCmd(a *app) *cobra.Command {
	var (
		f       ioFlags
		visible bool
	)

	cmd := &cobra.Command{
		Use:   "walls",
		Short: "Group walls by the section and coefficient of the texts around them",
		Long: `Reads the newest chapters export by default, so run "chapters" first or
pass --dataset explicitly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := f.loadDrawing()
			if err != nil {
				return err
			}

			chapters, err := dataset.LatestPath(a.cfg.Paths.ChaptersOutput)
			if err != nil {
				return err
			}

			table, err := f.loadDataset(cmd, chapters)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("visible") {
				a.cfg.Walls.VisibleAreas = visible
			}

			out, err := pipeline.Walls(snap, table, a.options())
			if err != nil {
				return err
			}

			output := f.output
			if output == "" {
				output = a.cfg.Paths.WallsOutput
			}

			if err := persist(cmd, out, output, f.annotations); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), out.Report, a.verbose)

			return nil
		},
	}

	f.bindDrawing(cmd)
	f.bindDataset(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "result table (default from config)")
	cmd.Flags().StringVar(&f.annotations, "annotations", "wall-areas.yaml", "where to write search circles")
	cmd.Flags().BoolVar(&visible, "visible", false, "draw search circles in red")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with every default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dataset.UniquePath(args[0])
			if err != nil {
				return err
			}

			if err := config.WriteFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", path)

			return nil
		},
	})

	return cmd
}
