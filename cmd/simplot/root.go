package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/lt1/simplot"
	"github.com/lt1/simplot/internal/config"
	"github.com/lt1/simplot/internal/logging"
	"github.com/lt1/simplot/internal/viewer"
)

// showFigure is replaced in tests.
var showFigure = viewer.Show

type flags struct {
	configPath string
	input      string
	output     string
	title      string
	columns    []string
	width      float64
	height     float64
	noShow     bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "simplot",
		Short: "Plot simulated glucose/insulin time series",
		Long: `simplot reads a table of simulation output (CSV or .xlsx) whose first
column is elapsed time in minutes and plots every other column against
time in hours on one figure. Without flags it plots ` + config.DefaultInput + `.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			return run(cmd.Context(), cfg, log)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.input, "input", "i", config.DefaultInput, "CSV or .xlsx table to plot")
	fl.StringVarP(&f.output, "output", "o", "", "Rendered image (default: input with .png extension)")
	fl.StringVar(&f.title, "title", "", "Figure title (default: input file name)")
	fl.StringSliceVar(&f.columns, "columns", nil, "Plot only these columns")
	fl.Float64Var(&f.width, "width", 20, "Figure width in cm")
	fl.Float64Var(&f.height, "height", 12, "Figure height in cm")
	fl.BoolVar(&f.noShow, "no-show", false, "Only write the image, do not open a viewer")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: warn, info, debug or trace")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("title") {
		cfg.Title = f.title
	}
	if changed("columns") {
		cfg.Columns = f.columns
	}
	if changed("width") {
		cfg.Width = f.width
	}
	if changed("height") {
		cfg.Height = f.height
	}
	if changed("no-show") {
		cfg.Show = !f.noShow
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	tbl, err := simplot.ReadTable(cfg.Input)
	if err != nil {
		return err
	}
	m, err := tbl.Matrix()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	df, err := simplot.NewDataFrame(tbl.Header, m)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.Info("table loaded", "path", cfg.Input, "rows", df.N, "columns", len(df.Columns))

	if len(cfg.Columns) > 0 {
		if df, err = df.Select(cfg.Columns); err != nil {
			return err
		}
	}

	if log.Enabled(ctx, logging.LevelTrace) {
		var b strings.Builder
		df.Print(&b)
		log.Log(ctx, logging.LevelTrace, "data frame", "content", b.String())
	}
	for _, s := range simplot.Summaries(df) {
		log.Debug("column summary",
			"name", s.Name, "n", s.N, "missing", s.Missing, "min", s.Min, "max", s.Max, "mean", s.Mean)
	}

	p := simplot.New(df)
	p.Log = log
	p.Title = cfg.Title
	if p.Title == "" {
		p.Title = strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
	}
	if cfg.XLabel != "" {
		p.XLabel = cfg.XLabel
	}
	p.YLabel = cfg.YLabel
	p.Geom.Style = simplot.AesMapping{
		"size":     cfg.Theme.LineWidth,
		"linetype": cfg.Theme.LineType,
		"alpha":    cfg.Theme.Alpha,
	}
	p.Theme.Palette = cfg.Theme.Palette

	out := cfg.OutputPath()
	if err := p.Save(out, vg.Length(cfg.Width)*vg.Centimeter, vg.Length(cfg.Height)*vg.Centimeter); err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}
	log.Info("figure written", "path", out, "series", len(p.Series))

	if !cfg.Show {
		return nil
	}
	return showFigure(out)
}
