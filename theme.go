package simplot

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
)

// AesMapping holds fixed aesthetics like "size" or "linetype" as text,
// e.g. {"size": "1.5", "linetype": "dashed"}.
type AesMapping map[string]string

// MergeStyles merges set values in all the ams. Earlier values win.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for k, v := range am {
			if _, ok := merged[k]; ok || v == "" {
				continue
			}
			merged[k] = v
		}
	}
	return merged
}

type Theme struct {
	// LineStyle is applied to every series. Understood aesthetics are
	// size (line width in points), linetype and alpha.
	LineStyle AesMapping

	// Palette colors series by their position. An empty palette uses
	// gonum's plotutil default colors.
	Palette []string
}

var DefaultTheme = Theme{
	LineStyle: AesMapping{
		"size":     "1",
		"linetype": "solid",
		"alpha":    "1",
	},
}

// SeriesColor returns the color of the i'th plotted series.
func (t Theme) SeriesColor(i int) color.Color {
	if len(t.Palette) == 0 {
		return plotutil.Color(i)
	}
	return String2Color(t.Palette[i%len(t.Palette)])
}

// Cycle returns how often the palette has wrapped around before the n'th
// series.
func (t Theme) Cycle(n int) int {
	k := len(t.Palette)
	if k == 0 {
		k = len(plotutil.DefaultColors)
	}
	return n / k
}
