package simplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// -------------------------------------------------------------------------
// Scale Transformations

type ScaleTransform struct {
	Name    string
	Trans   func(float64) float64
	Inverse func(float64) float64
}

var IdentityScale = ScaleTransform{
	Name:    "identity",
	Trans:   func(x float64) float64 { return x },
	Inverse: func(y float64) float64 { return y },
}

// MinutesToHours turns elapsed minutes into elapsed hours.
var MinutesToHours = ScaleTransform{
	Name:    "hours",
	Trans:   func(x float64) float64 { return x / 60 },
	Inverse: func(y float64) float64 { return y * 60 },
}

// -------------------------------------------------------------------------
// Scale

// Scale collects the data range of one axis.
type Scale struct {
	Name string

	// Expand is the fraction of the domain added on either side.
	Expand float64

	DomainMin float64
	DomainMax float64
}

// NewScale returns an untrained scale.
func NewScale(name string, expand float64) *Scale {
	return &Scale{
		Name:      name,
		Expand:    expand,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

// Train updates the domain of s with the finite values of f.
func (s *Scale) Train(f Field) {
	min, max, mini, maxi := f.MinMax()
	if mini != -1 && min < s.DomainMin {
		s.DomainMin = min
	}
	if maxi != -1 && max > s.DomainMax {
		s.DomainMax = max
	}
}

// Trained reports whether s has seen at least one finite value.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Range returns the expanded domain of s. A degenerate domain is widened
// by one unit on either side.
func (s *Scale) Range() (min, max float64) {
	if s.DomainMin == s.DomainMax {
		return s.DomainMin - 1, s.DomainMax + 1
	}
	expand := (s.DomainMax - s.DomainMin) * s.Expand
	return s.DomainMin - expand, s.DomainMax + expand
}

// -------------------------------------------------------------------------
// Ticks

// hourSteps are the tick distances in hours HourTicks chooses from.
var hourSteps = []float64{1, 2, 3, 4, 6, 12, 24, 48, 72, 168}

// HourTicks places major ticks on whole hours, choosing the smallest step
// which yields at most MaxTicks intervals. Ranges shorter than one hour or
// too long for the largest step use gonum's default ticks.
type HourTicks struct {
	MaxTicks int
}

var _ plot.Ticker = HourTicks{}

func (ht HourTicks) Ticks(min, max float64) []plot.Tick {
	n := ht.MaxTicks
	if n <= 0 {
		n = 8
	}
	if !finite(min) || !finite(max) || max-min < 1 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	step := 0.0
	for _, s := range hourSteps {
		if (max-min)/s <= float64(n) {
			step = s
			break
		}
	}
	if step == 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	var ticks []plot.Tick
	start := math.Ceil(min/step) * step
	for i := 0; i <= n; i++ {
		v := start + float64(i)*step
		if v > max {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}
