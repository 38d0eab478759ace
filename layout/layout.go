// Package layout reconstructs ordered text lines from positioned glyphs.
package layout

import (
	"sort"
	"strings"

	"github.com/dnovais/cvlens/decode"
)

// Line is the joined text of all glyphs sharing a vertical band on one page.
type Line struct {
	Y    float64
	Text string
}

// DefaultYTolerance is the vertical distance within which a glyph joins an
// existing line rather than starting a new one.
const DefaultYTolerance = 5.0

type lineAcc struct {
	y      float64
	glyphs []decode.Glyph
}

// Reconstruct groups one page's glyphs into lines and orders them top of page
// first. Each glyph joins the first line whose y is within yTolerance;
// otherwise it starts a new line. Within a line glyphs are ordered by x and
// joined with single spaces. Lines whose joined text is empty are dropped.
func Reconstruct(glyphs []decode.Glyph, yTolerance float64) []Line {
	if yTolerance <= 0 {
		yTolerance = DefaultYTolerance
	}

	var accs []*lineAcc
	for _, g := range glyphs {
		placed := false
		for _, acc := range accs {
			if abs(acc.y-g.Y) < yTolerance {
				acc.glyphs = append(acc.glyphs, g)
				placed = true
				break
			}
		}
		if !placed {
			accs = append(accs, &lineAcc{y: g.Y, glyphs: []decode.Glyph{g}})
		}
	}

	// Top of page first: PDF y grows upward.
	sort.SliceStable(accs, func(i, j int) bool { return accs[i].y > accs[j].y })

	lines := make([]Line, 0, len(accs))
	for _, acc := range accs {
		sort.SliceStable(acc.glyphs, func(i, j int) bool {
			return acc.glyphs[i].X < acc.glyphs[j].X
		})

		parts := make([]string, 0, len(acc.glyphs))
		for _, g := range acc.glyphs {
			if t := strings.TrimSpace(g.Text); t != "" {
				parts = append(parts, t)
			}
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" {
			continue
		}
		lines = append(lines, Line{Y: acc.y, Text: text})
	}
	return lines
}

// Document reconstructs lines for every page and concatenates them in page
// order, which is the line stream the segmenter consumes.
func Document(pages []decode.Page, yTolerance float64) []Line {
	var lines []Line
	for _, p := range pages {
		lines = append(lines, Reconstruct(p.Glyphs, yTolerance)...)
	}
	return lines
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
