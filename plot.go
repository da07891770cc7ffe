package scatter

import (
	"github.com/midbel/slices"
)

const (
	DefaultWidth  = 600.0
	DefaultHeight = 600.0
	DefaultMargin = 100.0
)

type Config struct {
	Width   float64
	Height  float64
	Margin  float64
	Ticks   int
	Palette Palette
}

func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Margin:  DefaultMargin,
		Ticks:   DefaultTicks,
		Palette: Category10,
	}
}

func (c Config) DrawingWidth() float64 {
	return c.Width - c.Margin*2
}

func (c Config) DrawingHeight() float64 {
	return c.Height - c.Margin*2
}

// View is everything needed to draw the plot for one state. It is never
// modified once returned.
type View struct {
	Loaded     bool
	Horizontal Attribute
	Vertical   Attribute

	X     Scaler
	Y     Scaler
	XAxis AxisLayout
	YAxis AxisLayout

	Categories Categories
	Points     []Point
}

func (v View) Selector() Selector {
	return Selector{
		Horizontal: v.Horizontal,
		Vertical:   v.Vertical,
		Options:    Attributes,
	}
}

type scaleKey struct {
	axis Axis
	attr Attribute
}

// Plot owns the state of the scatter plot: the records, the attribute bound
// to each axis and the categories of the legend. It is not safe for
// concurrent use.
type Plot struct {
	cfg Config

	loaded     bool
	generation int
	records    []Record
	categories Categories
	x          Attribute
	y          Attribute

	scales map[scaleKey]Scaler
}

func NewPlot(cfg Config) *Plot {
	if cfg.Ticks <= 0 {
		cfg.Ticks = DefaultTicks
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = Category10
	}
	return &Plot{
		cfg:    cfg,
		x:      slices.Fst(Attributes),
		y:      slices.Fst(slices.Rest(Attributes)),
		scales: make(map[scaleKey]Scaler),
	}
}

func (p *Plot) Config() Config {
	return p.cfg
}

// Load replaces the records of the plot and derives a new list of
// categories from them. The attributes bound to the axes are kept. Records
// are copied: later changes made by the caller are not seen by the plot.
func (p *Plot) Load(records []Record) {
	p.records = make([]Record, 0, len(records))
	for _, r := range records {
		p.records = append(p.records, NewRecord(r.Species, r.Values))
	}
	p.categories = DeriveCategories(p.records, p.cfg.Palette)
	p.loaded = true
	p.generation++
	p.scales = make(map[scaleKey]Scaler)
}

func (p *Plot) Generation() int {
	return p.generation
}

func (p *Plot) Select(axis Axis, attr Attribute) {
	switch axis {
	case Horizontal:
		p.x = attr
	case Vertical:
		p.y = attr
	}
}

func (p *Plot) SetHorizontal(attr Attribute) {
	p.Select(Horizontal, attr)
}

func (p *Plot) SetVertical(attr Attribute) {
	p.Select(Vertical, attr)
}

func (p *Plot) Toggle(index int) {
	p.categories = p.categories.Toggle(index)
}

func (p *Plot) Categories() Categories {
	return p.categories
}

// Selector returns the axis dropdowns showing the current selection and
// bound to the plot.
func (p *Plot) Selector() Selector {
	return Selector{
		Horizontal: p.x,
		Vertical:   p.y,
		Options:    Attributes,
		OnChange:   p.Select,
	}
}

func (p *Plot) View() View {
	var (
		xs = p.scale(Horizontal, p.x, NewRange(0, p.cfg.DrawingWidth()))
		ys = p.scale(Vertical, p.y, NewRange(0, p.cfg.DrawingHeight()))
		xa = NumberAxis{
			Title:       p.x.String(),
			Orientation: OrientBottom,
			Scaler:      xs,
		}
		ya = NumberAxis{
			Title:       p.y.String(),
			Orientation: OrientLeft,
			Scaler:      ys,
		}
	)
	return View{
		Loaded:     p.loaded,
		Horizontal: p.x,
		Vertical:   p.y,
		X:          xs,
		Y:          ys,
		XAxis:      xa.Layout(p.cfg.DrawingWidth(), p.cfg.Margin),
		YAxis:      ya.Layout(p.cfg.DrawingHeight(), p.cfg.Margin),
		Categories: p.categories,
		Points:     p.points(xs, ys),
	}
}

func (p *Plot) points(xs, ys Scaler) []Point {
	var list []Point
	for i, r := range p.records {
		cat, ok := p.categories.Lookup(r.Species)
		if !ok || !cat.Visible {
			continue
		}
		list = append(list, Point{
			Index:    i,
			X:        xs.Scale(r.Get(p.x)),
			Y:        ys.Scale(r.Get(p.y)),
			Category: cat.Name,
			Color:    cat.Color,
		})
	}
	return list
}

func (p *Plot) scale(axis Axis, attr Attribute, rg Range) Scaler {
	key := scaleKey{
		axis: axis,
		attr: attr,
	}
	if s, ok := p.scales[key]; ok {
		return s
	}
	s := NumberScaler(ExtentOf(p.records, attr), rg, p.cfg.Ticks)
	p.scales[key] = s
	return s
}
