package scatter

import (
	"html"
	"strconv"

	"github.com/midbel/svg"
)

const (
	FontSize = 12.0
	TickSize = 5.0
)

type Orientation int

const (
	OrientBottom Orientation = 1 << iota
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft
}

type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// AxisLayout is the geometry of an axis relative to its origin: the
// top-left corner of the plot area for vertical axes and the bottom-left
// corner for horizontal ones.
type AxisLayout struct {
	Orientation
	Length float64
	Ticks  []Tick

	Title  string
	TitleX float64
	TitleY float64
	Rotate float64
}

type NumberAxis struct {
	Title string
	Orientation
	Scaler Scaler
	Format func(float64) string
}

// Layout places the ticks of the axis along length. offset is the distance
// between the axis and the border of the canvas; the title is centered in
// it.
func (a NumberAxis) Layout(length, offset float64) AxisLayout {
	lay := AxisLayout{
		Orientation: a.Orientation,
		Length:      length,
		Title:       a.Title,
	}
	format := a.Format
	if format == nil {
		format = formatTick
	}
	for _, f := range a.Scaler.Ticks() {
		pos := a.Scaler.Scale(f)
		if a.Vertical() {
			pos = length - pos
		}
		lay.Ticks = append(lay.Ticks, Tick{
			Value: f,
			Pos:   pos,
			Label: format(f),
		})
	}
	if a.Vertical() {
		lay.TitleX, lay.TitleY = -offset/2, length/2
		lay.Rotate = 270
	} else {
		lay.TitleX, lay.TitleY = length/2, offset/2
	}
	return lay
}

func (a AxisLayout) Render(left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	g.Class = append(g.Class, "axis")
	d := domainLine(a.Orientation, a.Length, svg.NewStroke("gray", 1))
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	for _, t := range a.Ticks {
		grp := svg.NewGroup(svg.WithTranslate(t.Pos, 0))
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = t.Pos
		}
		tick := lineTick(a.Orientation, TickSize, svg.NewStroke("black", 1))
		text := tickText(a.Orientation, t.Label, font)
		grp.Append(tick.AsElement())
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	if a.Title != "" {
		g.Append(a.renderTitle(font))
	}
	return g.AsElement()
}

func (a AxisLayout) renderTitle(font svg.Font) svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "axis-title")
	if a.Rotate != 0 {
		grp.Transform.RA = a.Rotate
		grp.Transform.RX = a.TitleX
		grp.Transform.RY = a.TitleY
	}
	text := svg.NewText(escapeText(a.Title))
	text.Pos = svg.NewPos(a.TitleX, a.TitleY)
	text.Font = font
	text.Anchor = "middle"
	text.Baseline = "middle"
	grp.Append(text.AsElement())
	return grp.AsElement()
}

// escapeText makes str safe to embed as the content of a text element.
func escapeText(str string) string {
	return html.EscapeString(str)
}

func formatTick(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, size)
	)
	if orient.Vertical() {
		pos2.X, pos2.Y = -size, 0
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, TickSize
	)
	if orient.Vertical() {
		base = "middle"
		anchor = "end"
		x, y = -y, x
	}
	text := svg.NewText(escapeText(str))
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
