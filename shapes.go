package scatter

import (
	"fmt"

	"github.com/midbel/svg"
)

var DefaultSize float64 = 10

type MarkFunc func(svg.Pos, string) svg.Element

func MarkByName(name string) (MarkFunc, error) {
	switch name {
	case "circle", "":
		return GetCircle, nil
	case "square":
		return GetSquare, nil
	case "diamond":
		return GetDiamond, nil
	default:
		return nil, fmt.Errorf("%s: unknown mark", name)
	}
}

func GetCircle(pos svg.Pos, fill string) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(fill)
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, fill string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(fill)

	return el.AsElement()
}

func GetDiamond(pos svg.Pos, fill string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(fill)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}
