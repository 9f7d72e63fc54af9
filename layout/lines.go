package layout

import (
	"sort"

	"github.com/pagetext/pagetext/reader"
)

// Line is an ordered set of glyph runs judged to share a vertical position.
// Y is the representative baseline (taken from the line's first run) and
// FontSize is the maximum font size among its members.
type Line struct {
	Runs     []reader.GlyphRun
	Y        float64
	FontSize float64
}

// AvgX returns the mean X position of the line's runs.
func (l Line) AvgX() float64 {
	if len(l.Runs) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range l.Runs {
		total += r.X
	}
	return total / float64(len(l.Runs))
}

// Span returns the horizontal extent of the line, from the leftmost run
// origin to the rightmost run's right edge.
func (l Line) Span() float64 {
	if len(l.Runs) == 0 {
		return 0
	}
	minX := l.Runs[0].X
	maxX := l.Runs[0].X + l.Runs[0].Width
	for _, r := range l.Runs[1:] {
		if r.X < minX {
			minX = r.X
		}
		if right := r.X + r.Width; right > maxX {
			maxX = right
		}
	}
	return maxX - minX
}

// sortedByX returns the line's runs ordered left to right.
func (l Line) sortedByX() []reader.GlyphRun {
	runs := make([]reader.GlyphRun, len(l.Runs))
	copy(runs, l.Runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].X < runs[j].X
	})
	return runs
}

// sortRuns orders runs top-to-bottom, then left-to-right. Page coordinates
// are stored bottom-up, so descending Y reads from the top of the page; runs
// whose vertical distance falls within threshold belong to the same band and
// are ordered by ascending X instead.
func sortRuns(runs []reader.GlyphRun, threshold float64) []reader.GlyphRun {
	sorted := make([]reader.GlyphRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if yDiff > threshold || yDiff < -threshold {
			return yDiff > 0
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// foldIntoLines folds vertically sorted runs into lines, starting a new line
// whenever the vertical gap from the current line's representative Y exceeds
// threshold.
func foldIntoLines(sorted []reader.GlyphRun, threshold float64) []Line {
	if len(sorted) == 0 {
		return nil
	}

	lines := make([]Line, 0)
	current := Line{
		Runs:     []reader.GlyphRun{sorted[0]},
		Y:        sorted[0].Y,
		FontSize: sorted[0].FontSize,
	}

	for _, run := range sorted[1:] {
		gap := current.Y - run.Y
		if gap < 0 {
			gap = -gap
		}
		if gap > threshold {
			lines = append(lines, current)
			current = Line{
				Runs:     []reader.GlyphRun{run},
				Y:        run.Y,
				FontSize: run.FontSize,
			}
			continue
		}
		current.Runs = append(current.Runs, run)
		if run.FontSize > current.FontSize {
			current.FontSize = run.FontSize
		}
	}

	return append(lines, current)
}
