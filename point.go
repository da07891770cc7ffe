package scatter

import (
	"math"
)

// Point is the mark of one record: its offsets from the origin of the plot
// area as given by the horizontal and vertical scales.
type Point struct {
	Index    int
	X        float64
	Y        float64
	Category string
	Color    string
}

// Valid reports whether the point can be drawn: both offsets are finite.
func (p Point) Valid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
