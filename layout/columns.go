package layout

import "strings"

// columnBucket classifies a line for two-column emission.
type columnBucket int

const (
	bucketFullWidth columnBucket = iota
	bucketLeft
	bucketRight
)

// isTwoColumn decides whether a page should be read as two independent
// columns. Lines lean left or right based on their average X relative to the
// page midpoint; the page is two-column only when both sides carry more than
// MinLinesPerSide lines and the counts are reasonably balanced.
func (e *Extractor) isTwoColumn(lines []Line, pageWidth float64) bool {
	midpoint := pageWidth / 2

	leftCount, rightCount := 0, 0
	for _, line := range lines {
		avgX := line.AvgX()
		switch {
		case avgX < midpoint*e.config.LeftLeanRatio:
			leftCount++
		case avgX > midpoint*e.config.RightLeanRatio:
			rightCount++
		}
	}

	if leftCount <= e.config.MinLinesPerSide || rightCount <= e.config.MinLinesPerSide {
		return false
	}

	minCount, maxCount := leftCount, rightCount
	if minCount > maxCount {
		minCount, maxCount = maxCount, minCount
	}
	return float64(minCount)/float64(maxCount) > e.config.MinCountRatio
}

// twoColumnText emits a two-column page in reading order: full-width lines
// first (a name header typically spans both columns), then the whole left
// column, then the whole right column. Within each bucket lines keep their
// top-to-bottom order; non-empty buckets are separated by one blank line.
func (e *Extractor) twoColumnText(lines []Line, pageWidth, avgFontSize float64) string {
	midpoint := pageWidth / 2

	var fullWidth, left, right []string
	for _, line := range lines {
		text := e.lineText(line, avgFontSize)
		switch e.classifyLine(line, pageWidth, midpoint) {
		case bucketFullWidth:
			fullWidth = append(fullWidth, text)
		case bucketLeft:
			left = append(left, text)
		default:
			right = append(right, text)
		}
	}

	buckets := make([]string, 0, 3)
	for _, bucket := range [][]string{fullWidth, left, right} {
		if len(bucket) > 0 {
			buckets = append(buckets, strings.Join(bucket, "\n"))
		}
	}
	return strings.Join(buckets, "\n\n")
}

func (e *Extractor) classifyLine(line Line, pageWidth, midpoint float64) columnBucket {
	if line.Span() > pageWidth*e.config.FullWidthRatio {
		return bucketFullWidth
	}
	if line.AvgX() < midpoint*e.config.LeftBucketRatio {
		return bucketLeft
	}
	return bucketRight
}
