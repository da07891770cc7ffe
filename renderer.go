package scatter

import (
	"strconv"

	"github.com/midbel/svg"
)

// PointRenderer draws one mark per point. Points are offsets from the
// bottom-left corner of an area of the given height; the vertical offset
// grows upward.
type PointRenderer struct {
	Height float64
	Mark   MarkFunc
}

func (r PointRenderer) Render(points []Point) svg.Element {
	mark := r.Mark
	if mark == nil {
		mark = GetCircle
	}
	grp := getBaseGroup("marks")
	grp.Id = "marks"
	for _, pt := range points {
		if !pt.Valid() {
			continue
		}
		g := getBaseGroup("mark")
		g.Id = "mark-" + strconv.Itoa(pt.Index)
		g.Append(mark(svg.NewPos(pt.X, r.Height-pt.Y), pt.Color))
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func getBaseGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}
