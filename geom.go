package simplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is one plotted line: a data column against transformed time.
type Series struct {
	// Index is the column index in the data frame; it identifies the series.
	Index int
	Name  string

	Points plotter.XYs
}

// BuildSeries returns one series for every non-time column of df, in column
// order. The x values are the time column mapped through trans.
func BuildSeries(df *DataFrame, trans ScaleTransform) []Series {
	if len(df.Columns) < 2 {
		return nil
	}
	time := df.Time().Copy()
	time.Apply(trans.Trans)

	series := make([]Series, 0, len(df.Columns)-1)
	for i, f := range df.Columns[1:] {
		points := make(plotter.XYs, df.N)
		for j := range points {
			points[j].X = time.Data[j]
			points[j].Y = f.Data[j]
		}
		series = append(series, Series{
			Index:  i + 1,
			Name:   f.Name,
			Points: points,
		})
	}
	return series
}

// Segments partitions the points of s at non-finite values. Each segment
// holds consecutive finite points only; missing samples leave a gap.
func (s Series) Segments() []plotter.XYs {
	var segments []plotter.XYs
	var cur plotter.XYs
	for _, p := range s.Points {
		if !finite(p.X) || !finite(p.Y) {
			if len(cur) > 0 {
				segments = append(segments, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segments = append(segments, cur)
	}
	return segments
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// -------------------------------------------------------------------------
// Geom Line

// GeomLine draws series as lines.
type GeomLine struct {
	Style AesMapping // The individal fixed, aka non-mapped aesthetics
}

func (g GeomLine) Name() string { return "GeomLine" }

// LineStyle returns the draw style of the n'th series (zero based) under
// theme. Solid lines switch to plotutil's dash patterns each time the
// palette wraps around. A blank line type has zero width.
func (g GeomLine) LineStyle(theme Theme, n int) draw.LineStyle {
	style := MergeStyles(g.Style, theme.LineStyle, DefaultTheme.LineStyle)
	width := vg.Points(String2Float(style["size"], 0.1, 20, 1))
	alpha := String2Float(style["alpha"], 0, 1, 1)
	color := SetAlpha(theme.SeriesColor(n), alpha)

	lt := String2LineType(style["linetype"])
	if lt == BlankLine {
		return draw.LineStyle{Color: color}
	}
	dashes := lt.Dashes(width)
	if c := theme.Cycle(n); lt == SolidLine && c > 0 {
		dashes = plotutil.Dashes(c)
	}
	return draw.LineStyle{
		Color:  color,
		Width:  width,
		Dashes: dashes,
	}
}

// Render turns s into line plotters, one per segment, and a thumbnail for
// the legend. Nothing is drawn for a style without width.
func (g GeomLine) Render(s Series, style draw.LineStyle) ([]plot.Plotter, plot.Thumbnailer, error) {
	var plotters []plot.Plotter
	if style.Width <= 0 {
		return nil, &plotter.Line{LineStyle: style}, nil
	}
	for _, seg := range s.Segments() {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return nil, nil, err
		}
		line.LineStyle = style
		plotters = append(plotters, line)
	}
	return plotters, &plotter.Line{LineStyle: style}, nil
}
