package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextMeasurer reports the size of a topic's text. Text measurement is
// an external capability: a GUI host injects its font metrics, the
// terminal viewer uses display-cell widths.
type TextMeasurer interface {
	Measure(topic string) (w, h float64)
}

// RuneMetrics measures text by display cells, one cell per column as a
// terminal would render it. Wide runes count as two columns.
type RuneMetrics struct {
	CellWidth  float64
	CellHeight float64
}

// Measure returns the size of the widest line by the line count.
func (m RuneMetrics) Measure(topic string) (w, h float64) {
	lines := strings.Split(topic, "\n")
	maxCols := 1
	for _, line := range lines {
		if cols := runewidth.StringWidth(line); cols > maxCols {
			maxCols = cols
		}
	}
	return float64(maxCols) * m.CellWidth, float64(len(lines)) * m.CellHeight
}

// Metrics bundles the measurement capability with the fixed spacing
// constants the engine applies around it.
type Metrics struct {
	Measurer TextMeasurer

	PaddingX float64 // horizontal padding inside a node box
	PaddingY float64 // vertical padding inside a node box
	HSpacing float64 // gap between a parent and its children column
	VSpacing float64 // gap between sibling subtrees

	IndicatorSize float64 // side length of expand/hyperlink indicator boxes
}

// DefaultMetrics returns terminal-cell metrics suitable for the
// bundled viewer.
func DefaultMetrics() Metrics {
	return Metrics{
		Measurer:      RuneMetrics{CellWidth: 1, CellHeight: 1},
		PaddingX:      2,
		PaddingY:      1,
		HSpacing:      6,
		VSpacing:      1,
		IndicatorSize: 1,
	}
}

// nodeSize returns the box size for a node's topic under these metrics.
func (m Metrics) nodeSize(topic string) (w, h float64) {
	tw, th := m.Measurer.Measure(topic)
	return tw + 2*m.PaddingX, th + 2*m.PaddingY
}
