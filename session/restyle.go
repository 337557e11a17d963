package session

import (
	"math/rand/v2"

	"github.com/iw2rmb/stylerun/run"
)

// Restyle gives [start, end) the style s.
//
// A collapsed range returns the runs unchanged. Otherwise the selected text
// is replaced by itself in style s, so any style boundaries inside the range
// are discarded.
func Restyle(rs run.Runs, start, end int, s run.Style) run.Runs {
	start, end = run.OrderedRange(start, end, rs.Len())
	if start == end {
		return rs.Clone()
	}
	text := run.TextInRange(rs, start, end)
	return run.ReplaceRange(rs, start, end, text, s)
}

// Palette is the set of fonts and colors a session can pick from.
type Palette struct {
	Fonts  []string
	Colors []string
}

// Random picks a font and a color uniformly. Empty lists fall back to the
// matching field of def.
func (p Palette) Random(rng *rand.Rand, def run.Style) run.Style {
	out := def
	if len(p.Fonts) > 0 {
		out.FontFamily = p.Fonts[rng.IntN(len(p.Fonts))]
	}
	if len(p.Colors) > 0 {
		out.Color = p.Colors[rng.IntN(len(p.Colors))]
	}
	return out
}

// NextFont returns the palette font after cur, wrapping around. A font not in
// the palette yields the first one.
func (p Palette) NextFont(cur string) string {
	return nextIn(p.Fonts, cur)
}

// NextColor returns the palette color after cur, wrapping around.
func (p Palette) NextColor(cur string) string {
	return nextIn(p.Colors, cur)
}

func nextIn(list []string, cur string) string {
	if len(list) == 0 {
		return cur
	}
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
