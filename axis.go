// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	// tickLen is the length in pixels of an axis tick mark.
	tickLen = 6
	// axisSpace and axisSpaceNamed are the layout bands an axis
	// claims off its edge, without and with a name label.
	axisSpace      = 36
	axisSpaceNamed = 60
)

// An Axis is one labeled edge of a chart. Top and Bottom axes render
// the X scale, Left and Right axes the Y scale. Axes declared on the
// same edge stack outward in declaration order, the first declared
// sitting outermost, so their label bands never overlap.
type Axis struct {
	Name string
	Edge Edge

	invert   bool
	maxTicks int
}

// NewAxis returns an axis named name on the given edge.
func NewAxis(name string, edge Edge) *Axis {
	return &Axis{Name: name, Edge: edge, maxTicks: defaultMaxTicks}
}

// Inverted flips the axis direction: values grow downward (vertical
// axes) or leftward (horizontal axes).
func (a *Axis) Inverted() *Axis {
	a.invert = true
	return a
}

// MaxTicks sets the tick count the axis aims for (default 5).
func (a *Axis) MaxTicks(n int) *Axis {
	a.maxTicks = n
	return a
}

func (a *Axis) horizontal() bool {
	return a.Edge == Top || a.Edge == Bottom
}

// space is the band the axis claims during layout.
func (a *Axis) space() int {
	if a.Name != "" {
		return axisSpaceNamed
	}
	return axisSpace
}

// render draws the axis into its layout band. strip is the band split
// off during layout; area is the final plot area. The baseline, tick
// marks, tick labels and name are drawn relative to the edge shared by
// strip and area. Rendering mutates nothing and cannot fail.
func (a *Axis) render(canvas *svg.SVG, strip, area rect, s Scale) {
	if a.invert {
		s = s.Invert()
	}
	if a.horizontal() {
		strip.intersectHoriz(area)
	} else {
		strip.intersectVert(area)
	}
	ticks := s.Ticks(a.maxTicks)

	var path bytes.Buffer
	switch a.Edge {
	case Bottom:
		y := strip.y
		fmt.Fprintf(&path, "M%d %dh%d", strip.x, y, strip.w)
		for _, t := range ticks {
			fmt.Fprintf(&path, " M%d %dv%d", a.tickX(t, area), y, tickLen)
		}
	case Top:
		y := strip.bottom()
		fmt.Fprintf(&path, "M%d %dh%d", strip.x, y, strip.w)
		for _, t := range ticks {
			fmt.Fprintf(&path, " M%d %dv%d", a.tickX(t, area), y, -tickLen)
		}
	case Left:
		x := strip.right()
		fmt.Fprintf(&path, "M%d %dv%d", x, strip.y, strip.h)
		for _, t := range ticks {
			fmt.Fprintf(&path, " M%d %dh%d", x, a.tickY(t, area), -tickLen)
		}
	case Right:
		x := strip.x
		fmt.Fprintf(&path, "M%d %dv%d", x, strip.y, strip.h)
		for _, t := range ticks {
			fmt.Fprintf(&path, " M%d %dh%d", x, a.tickY(t, area), tickLen)
		}
	}
	canvas.Path(path.String(), `class="axis-line"`)

	a.renderTickLabels(canvas, strip, area, ticks)
	a.renderName(canvas, strip, area)
}

func (a *Axis) renderTickLabels(canvas *svg.SVG, strip, area rect, ticks []Tick) {
	for _, t := range ticks {
		switch a.Edge {
		case Bottom:
			canvas.Text(a.tickX(t, area), strip.y+tickLen+12, t.Label, `class="tick-label" text-anchor="middle"`)
		case Top:
			canvas.Text(a.tickX(t, area), strip.bottom()-tickLen-6, t.Label, `class="tick-label" text-anchor="middle"`)
		case Left:
			canvas.Text(strip.right()-tickLen-4, a.tickY(t, area)+4, t.Label, `class="tick-label" text-anchor="end"`)
		case Right:
			canvas.Text(strip.x+tickLen+4, a.tickY(t, area)+4, t.Label, `class="tick-label" text-anchor="start"`)
		}
	}
}

func (a *Axis) renderName(canvas *svg.SVG, strip, area rect) {
	if a.Name == "" {
		return
	}
	cx := area.x + area.w/2
	cy := area.y + area.h/2
	switch a.Edge {
	case Bottom:
		canvas.Text(cx, strip.bottom()-4, a.Name, `class="axis-name" text-anchor="middle"`)
	case Top:
		canvas.Text(cx, strip.y+12, a.Name, `class="axis-name" text-anchor="middle"`)
	case Left:
		attrs := fmt.Sprintf(`class="axis-name" text-anchor="middle" transform="translate(%d %d) rotate(-90)"`, strip.x+12, cy)
		canvas.Text(0, 0, a.Name, attrs)
	case Right:
		attrs := fmt.Sprintf(`class="axis-name" text-anchor="middle" transform="translate(%d %d) rotate(90)"`, strip.right()-12, cy)
		canvas.Text(0, 0, a.Name, attrs)
	}
}

// tickX maps a tick's clamped normalized position onto the plot area's
// horizontal extent.
func (a *Axis) tickX(t Tick, area rect) int {
	return area.x + int(math.Round(t.Norm*float64(area.w)))
}

// tickY is the vertical analog; normalized 0 sits at the bottom.
func (a *Axis) tickY(t Tick, area rect) int {
	return area.bottom() - int(math.Round(t.Norm*float64(area.h)))
}
