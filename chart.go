// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// Default chart viewport, used when Size is not called.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

const (
	// chartInset is the margin between the frame and everything else.
	chartInset = 10
	// titleSpace is the band a title claims off its edge.
	titleSpace = 30
	// legendSpace is the band the legend row claims off the bottom.
	legendSpace = 24
)

// A Title is chart title text placed on one edge.
type Title struct {
	Text   string
	Edge   Edge
	Anchor Anchor
}

// A Chart is one composed visualization: titles, axes and plots sharing
// one coordinate frame. Charts are built with the fluent methods below
// and rendered with WriteSVG or String. Rendering is a read-only
// traversal: it mutates nothing, cannot fail, and emits byte-identical
// output on every call.
//
// The library does not validate that a plot's scale matches an axis on
// a compatible edge; a mismatched pairing renders well-formed but
// visually incorrect output and is the caller's responsibility.
type Chart struct {
	titles    []Title
	width     int
	height    int
	domain    Domain
	hasDomain bool
	legend    bool
	axes      []*Axis
	plots     []*Plot
	css       string
}

// NewChart returns an empty chart with the default viewport.
func NewChart() *Chart {
	return &Chart{width: DefaultWidth, height: DefaultHeight}
}

// Title adds a centered title on the top edge.
func (c *Chart) Title(text string) *Chart {
	return c.AddTitle(Title{Text: text, Edge: Top})
}

// AddTitle adds a title with explicit edge and anchor.
func (c *Chart) AddTitle(t Title) *Chart {
	c.titles = append(c.titles, t)
	return c
}

// Size sets the viewport in pixels. Non-positive dimensions fall back
// to the defaults.
func (c *Chart) Size(width, height int) *Chart {
	if width <= 0 || height <= 0 {
		Warning.Printf("ignoring non-positive chart size %dx%d", width, height)
		return c
	}
	c.width, c.height = width, height
	return c
}

// Domain fixes the chart's data domain. Without an explicit domain the
// chart derives the tightest bounds over all of its plots' series at
// render time.
func (c *Chart) Domain(d Domain) *Chart {
	c.domain = d
	c.hasDomain = true
	return c
}

// Axis adds an axis named name on the given edge.
func (c *Chart) Axis(name string, edge Edge) *Chart {
	return c.AddAxis(NewAxis(name, edge))
}

// AddAxis adds a configured axis.
func (c *Chart) AddAxis(a *Axis) *Chart {
	c.axes = append(c.axes, a)
	return c
}

// Plot adds a plot. Plots draw above the axes, in declaration order.
func (c *Chart) Plot(p *Plot) *Chart {
	c.plots = append(c.plots, p)
	return c
}

// Legend reserves a row under the plot area listing each plot's series
// name.
func (c *Chart) Legend() *Chart {
	c.legend = true
	return c
}

// Style attaches stylesheet text, emitted verbatim in a <style> block.
// The library never interprets the CSS.
func (c *Chart) Style(css string) *Chart {
	c.css = css
	return c
}

// WriteSVG renders the chart as a standalone SVG document. The returned
// error is the writer's, never the renderer's.
func (c *Chart) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(c.width, c.height)
	c.render(canvas, ew)
	canvas.End()
	return ew.err
}

// String renders the chart to a string.
func (c *Chart) String() string {
	var buf bytes.Buffer
	c.WriteSVG(&buf)
	return buf.String()
}

// renderDomain resolves the domain the render uses: the explicit one if
// set, otherwise the tightest bounds over all plotted series.
func (c *Chart) renderDomain() Domain {
	if c.hasDomain {
		return c.domain
	}
	series := make([]Series, len(c.plots))
	for i, p := range c.plots {
		series[i] = p.series
	}
	return DomainFrom(series...)
}

// render emits the chart's content in fixed order: frame, titles, axes
// in declaration order, then plots in declaration order so plot
// geometry sits above axis lines, then the legend. raw is the writer
// under canvas, used for the opaque <style> block.
func (c *Chart) render(canvas *svg.SVG, raw io.Writer) {
	if c.css != "" {
		fmt.Fprintf(raw, "<style>\n%s\n</style>\n", c.css)
	}
	canvas.Rect(0, 0, c.width, c.height, `class="chart-frame"`)

	area := rect{0, 0, c.width, c.height}.inset(chartInset)
	titleRects := make([]rect, len(c.titles))
	for i, t := range c.titles {
		titleRects[i] = area.split(t.Edge, titleSpace)
	}
	var legendRect rect
	if c.legend {
		legendRect = area.split(Bottom, legendSpace)
	}
	axisRects := make([]rect, len(c.axes))
	for i, a := range c.axes {
		axisRects[i] = area.split(a.Edge, a.space())
	}

	for i, t := range c.titles {
		renderTitle(canvas, t, titleRects[i])
	}

	d := c.renderDomain()
	xBase, yBase := d.xScale(), d.yScale()
	for i, a := range c.axes {
		s := xBase
		if !a.horizontal() {
			s = yBase
		}
		a.render(canvas, axisRects[i], area, s)
	}

	f := frame{area: area, x: c.plotScale(xBase, true), y: c.plotScale(yBase, false)}
	for i, p := range c.plots {
		p.render(canvas, i, f)
	}

	if c.legend {
		c.renderLegend(canvas, legendRect)
	}
}

// plotScale derives the scale plots map through for one dimension,
// honoring the inversion of the first declared axis of that dimension
// so plotted geometry agrees with its axis.
func (c *Chart) plotScale(base Scale, horizontal bool) Scale {
	for _, a := range c.axes {
		if a.horizontal() == horizontal {
			if a.invert {
				return base.Invert()
			}
			return base
		}
	}
	return base
}

func (c *Chart) renderLegend(canvas *svg.SVG, strip rect) {
	n := len(c.plots)
	if n == 0 {
		return
	}
	canvas.Group(`class="legend"`)
	y := strip.y + strip.h/2 + 4
	for i, p := range c.plots {
		x := strip.x + (2*i+1)*strip.w/(2*n)
		attrs := fmt.Sprintf(`class="legend-item plot-%d" text-anchor="middle"`, i)
		canvas.Text(x, y, p.series.Name, attrs)
	}
	canvas.Gend()
}

func renderTitle(canvas *svg.SVG, t Title, strip rect) {
	class := `class="title" ` + t.Anchor.attr()
	switch t.Edge {
	case Bottom, Top:
		x := strip.x + strip.w/2
		switch t.Anchor {
		case AnchorStart:
			x = strip.x
		case AnchorEnd:
			x = strip.right()
		}
		canvas.Text(x, strip.y+strip.h/2+6, t.Text, class)
	case Left, Right:
		y := strip.y + strip.h/2
		switch t.Anchor {
		case AnchorStart:
			y = strip.bottom()
		case AnchorEnd:
			y = strip.y
		}
		rot := -90
		if t.Edge == Right {
			rot = 90
			y = strip.bottom() - (y - strip.y)
		}
		attrs := fmt.Sprintf(`%s transform="translate(%d %d) rotate(%d)"`, class, strip.x+strip.w/2+6, y, rot)
		canvas.Text(0, 0, t.Text, attrs)
	}
}
