package scatter

import (
	"strconv"

	"github.com/midbel/svg"
)

const (
	legendSpacing = 30.0
	legendSwatch  = 10.0
)

type Category struct {
	Name    string
	Color   string
	Visible bool
}

// Categories is treated as a value: operations that change a category
// return a new list and leave the receiver untouched.
type Categories []Category

// DeriveCategories returns one visible category per distinct species in the
// order of their first appearance in records. Colours are taken from the
// palette in that same order.
func DeriveCategories(records []Record, palette Palette) Categories {
	var (
		list Categories
		seen = make(map[string]struct{})
	)
	for _, r := range records {
		if _, ok := seen[r.Species]; ok {
			continue
		}
		seen[r.Species] = struct{}{}
		list = append(list, Category{
			Name:    r.Species,
			Color:   palette.Color(len(list)),
			Visible: true,
		})
	}
	return list
}

func (cs Categories) Toggle(index int) Categories {
	list := make(Categories, len(cs))
	copy(list, cs)
	if index >= 0 && index < len(list) {
		list[index].Visible = !list[index].Visible
	}
	return list
}

func (cs Categories) Lookup(name string) (Category, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

func (cs Categories) Index(name string) int {
	for i, c := range cs {
		if c.Name == name {
			return i
		}
	}
	return -1
}

type Legend struct {
	Categories
	Left float64
	Top  float64
}

func (g Legend) Render() svg.Element {
	grp := svg.NewGroup(svg.WithID("legend"))
	font := svg.NewFont(FontSize)
	for i, c := range g.Categories {
		el := svg.NewGroup(svg.WithTranslate(g.Left, g.Top+float64(i)*legendSpacing))
		el.Id = "legend-" + strconv.Itoa(i)
		el.Class = append(el.Class, "legend")
		if !c.Visible {
			el.Class = append(el.Class, "legend-hidden")
		}

		var rec svg.Rect
		rec.Pos = svg.NewPos(0, 0)
		rec.Dim = svg.NewDim(legendSwatch, legendSwatch)
		rec.Fill = svg.NewFill(c.Color)

		text := svg.NewText(escapeText(c.Name))
		text.Pos = svg.NewPos(legendSwatch*1.5, legendSwatch/2)
		text.Font = font
		text.Baseline = "middle"

		el.Append(rec.AsElement())
		el.Append(text.AsElement())
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}
