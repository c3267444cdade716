package simplot

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot draws every non-time column of a data frame against time on one
// shared figure.
type Plot struct {
	// Data is the data to draw. Column 0 is time.
	Data *DataFrame

	Title, XLabel, YLabel string

	// Transform maps the raw time column to the x axis. The zero value
	// is MinutesToHours.
	Transform ScaleTransform

	Geom  GeomLine
	Theme Theme

	// Log receives warnings and debug output. Nil uses slog.Default().
	Log *slog.Logger

	// Series and Scales are set up by PrepareSeries and TrainScales.
	Series []Series
	Scales map[string]*Scale
}

// New returns a plot of df with default labels and theme.
func New(df *DataFrame) *Plot {
	return &Plot{
		Data:      df,
		XLabel:    df.Time().Name + " [h]",
		Transform: MinutesToHours,
		Theme:     DefaultTheme,
	}
}

func (p *Plot) logger() *slog.Logger {
	if p.Log == nil {
		return slog.Default()
	}
	return p.Log
}

func (p *Plot) Warnf(f string, args ...interface{}) {
	p.logger().Warn(strings.TrimSuffix(fmt.Sprintf(f, args...), "\n"))
}

// PrepareSeries builds one series per non-time column.
func (p *Plot) PrepareSeries() {
	if p.Transform.Trans == nil {
		p.Transform = MinutesToHours
	}
	p.Series = BuildSeries(p.Data, p.Transform)
}

// TrainScales sets up the x and y scale from the prepared series.
func (p *Plot) TrainScales() {
	x, y := NewScale("x", 0), NewScale("y", 0.05)
	for _, s := range p.Series {
		xf, yf := Field{Data: make([]float64, len(s.Points))}, Field{Data: make([]float64, len(s.Points))}
		for i, pt := range s.Points {
			xf.Data[i], yf.Data[i] = pt.X, pt.Y
		}
		x.Train(xf)
		y.Train(yf)
	}
	p.Scales = map[string]*Scale{"x": x, "y": y}
}

// Build assembles the gonum figure: one line per series, a shared legend
// and axis ranges from the trained scales.
func (p *Plot) Build() (*plot.Plot, error) {
	p.PrepareSeries()
	p.TrainScales()

	gp, err := plot.New()
	if err != nil {
		return nil, err
	}
	gp.Title.Text = p.Title
	gp.X.Label.Text = p.XLabel
	gp.Y.Label.Text = p.YLabel
	gp.Legend.Top = true
	gp.Add(plotter.NewGrid())

	for n, s := range p.Series {
		style := p.Geom.LineStyle(p.Theme, n)
		lines, thumb, err := p.Geom.Render(s, style)
		if err != nil {
			return nil, fmt.Errorf("series %d (%s): %w", s.Index, s.Name, err)
		}
		if len(s.Segments()) == 0 {
			p.Warnf("Series %d (%s) has no finite values.", s.Index, s.Name)
		}
		p.logger().Debug("series rendered",
			"index", s.Index, "name", s.Name, "points", len(s.Points), "segments", len(lines))
		gp.Add(lines...)
		gp.Legend.Add(s.Name, thumb)
	}

	if p.Transform.Name == MinutesToHours.Name {
		gp.X.Tick.Marker = HourTicks{}
	}
	if x := p.Scales["x"]; x.Trained() {
		gp.X.Min, gp.X.Max = x.Range()
	}
	if y := p.Scales["y"]; y.Trained() {
		gp.Y.Min, gp.Y.Max = y.Range()
	}

	return gp, nil
}

// Save renders the plot to path. The image format follows the file
// extension, e.g. .png, .svg or .pdf.
func (p *Plot) Save(path string, width, height vg.Length) error {
	gp, err := p.Build()
	if err != nil {
		return err
	}
	return gp.Save(width, height, path)
}

// WriteTo renders the plot in the given format to w.
func (p *Plot) WriteTo(w io.Writer, format string, width, height vg.Length) (int64, error) {
	gp, err := p.Build()
	if err != nil {
		return 0, err
	}
	wt, err := gp.WriterTo(width, height, format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}
