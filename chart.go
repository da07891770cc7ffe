package scatter

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
	"github.com/tdewolff/minify/v2"
	msvg "github.com/tdewolff/minify/v2/svg"
)

const MediaSVG = "image/svg+xml"

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func UniformPadding(size float64) Padding {
	return Padding{
		Top:    size,
		Right:  size,
		Bottom: size,
		Left:   size,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Width  float64
	Height float64

	Padding

	Mark   MarkFunc
	Minify bool
}

func NewChart(cfg Config) Chart {
	return Chart{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Padding: UniformPadding(cfg.Margin),
	}
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render writes the view as a standalone SVG document to w.
func (c Chart) Render(w io.Writer, v View) error {
	var mw io.WriteCloser
	if c.Minify {
		m := minify.New()
		m.AddFunc(MediaSVG, msvg.Minify)
		mw = m.Writer(MediaSVG, w)
		w = mw
	}
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	el.Append(c.drawAxis(v))
	el.Append(c.drawLegend(v))
	el.Append(c.drawPoints(v))

	bw := bufio.NewWriter(w)
	el.Render(bw)
	if err := bw.Flush(); err != nil {
		if mw != nil {
			mw.Close()
		}
		return err
	}
	if mw != nil {
		return mw.Close()
	}
	return nil
}

func (c Chart) drawAxis(v View) svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	g.Append(v.XAxis.Render(c.Padding.Left, c.Height-c.Padding.Bottom))
	g.Append(v.YAxis.Render(c.Padding.Left, c.Padding.Top))
	return g.AsElement()
}

func (c Chart) drawLegend(v View) svg.Element {
	lg := Legend{
		Categories: v.Categories,
		Left:       c.Width - c.Padding.Right,
		Top:        c.Padding.Top,
	}
	return lg.Render()
}

func (c Chart) drawPoints(v View) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)

	rdr := PointRenderer{
		Height: c.DrawingHeight(),
		Mark:   c.Mark,
	}
	g.Append(rdr.Render(v.Points))
	return g.AsElement()
}
