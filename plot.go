// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

// MarkerShape selects the glyph a scatter plot draws at each point.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerDiamond
	MarkerTriangle
)

// defaultMarkerSize is the marker radius in pixels.
const defaultMarkerSize = 3

// plotKind is the closed set of plot variants. Variants are a tagged
// union rather than an interface: the set is closed and the chart
// selects geometry at render time.
type plotKind int

const (
	lineKind plotKind = iota
	scatterKind
	areaKind
)

// A Plot is a renderable view of one series. It borrows the series'
// points and owns no data; constructing and rendering a Plot never
// mutates the series.
type Plot struct {
	kind       plotKind
	series     Series
	marker     MarkerShape
	markerSize int
	labeled    bool
	labelBelow bool
}

// Line returns a line plot of s: straight segments between consecutive
// points in input order. Points are not sorted; callers wanting a
// monotonic line must pre-sort.
func Line(s Series) *Plot {
	return &Plot{kind: lineKind, series: s, markerSize: defaultMarkerSize}
}

// Scatter returns a scatter plot of s: one unconnected marker per
// point.
func Scatter(s Series) *Plot {
	return &Plot{kind: scatterKind, series: s, markerSize: defaultMarkerSize}
}

// Area returns an area plot of s: the line through s filled down to the
// y=0 baseline.
func Area(s Series) *Plot {
	return &Plot{kind: areaKind, series: s, markerSize: defaultMarkerSize}
}

// Label annotates every point with its "(x, y)" value above the point.
// Overlapping labels are not deconflicted.
func (p *Plot) Label() *Plot {
	p.labeled = true
	p.labelBelow = false
	return p
}

// LabelBelow is Label with the annotation below the point.
func (p *Plot) LabelBelow() *Plot {
	p.labeled = true
	p.labelBelow = true
	return p
}

// Marker sets the scatter glyph shape.
func (p *Plot) Marker(m MarkerShape) *Plot {
	p.marker = m
	return p
}

// MarkerSize sets the marker radius in pixels.
func (p *Plot) MarkerSize(r int) *Plot {
	if r > 0 {
		p.markerSize = r
	}
	return p
}

// Name returns the plotted series' name.
func (p *Plot) Name() string {
	return p.series.Name
}

// A frame maps data-space coordinates into the pixel-space plot area
// through the chart's shared per-dimension scales. Mapped values are
// not clamped: out-of-domain points land outside the area.
type frame struct {
	area rect
	x, y Scale
}

func (f frame) mapX(v float64) float64 {
	return float64(f.area.x) + float64(f.area.w)*f.x.Norm(v)
}

func (f frame) mapY(v float64) float64 {
	return float64(f.area.y) + float64(f.area.h)*(1-f.y.Norm(v))
}

// render emits the plot's geometry. num is the plot's declaration index
// within its chart, used for the per-plot style hook. An empty series
// renders nothing.
func (p *Plot) render(canvas *svg.SVG, num int, f frame) {
	switch p.kind {
	case lineKind:
		p.renderLine(canvas, num, f)
	case scatterKind:
		p.renderScatter(canvas, num, f)
	case areaKind:
		p.renderArea(canvas, num, f)
	}
	if p.labeled {
		p.renderLabels(canvas, f)
	}
}

func (p *Plot) renderLine(canvas *svg.SVG, num int, f frame) {
	pts := p.series.Points
	class := fmt.Sprintf(`class="plot-line plot-%d"`, num)
	if len(pts) == 1 {
		if !isFinite(pts[0].X) || !isFinite(pts[0].Y) {
			return
		}
		// A path through one point has no extent; draw the
		// single-point artifact as a dot instead.
		x := int(math.Round(f.mapX(pts[0].X)))
		y := int(math.Round(f.mapY(pts[0].Y)))
		canvas.Circle(x, y, p.markerSize, class)
		return
	}
	path := p.pathThrough(f, false)
	if len(path) == 0 {
		return
	}
	canvas.Path(string(path), class)
}

func (p *Plot) renderScatter(canvas *svg.SVG, num int, f frame) {
	class := fmt.Sprintf(`class="plot-marker plot-%d"`, num)
	r := p.markerSize
	for _, pt := range p.series.Points {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			continue
		}
		x := int(math.Round(f.mapX(pt.X)))
		y := int(math.Round(f.mapY(pt.Y)))
		switch p.marker {
		case MarkerSquare:
			canvas.Rect(x-r, y-r, 2*r, 2*r, class)
		case MarkerDiamond:
			canvas.Path(fmt.Sprintf("M%d %d %d %d %d %d %d %dz", x, y-r, x+r, y, x, y+r, x-r, y), class)
		case MarkerTriangle:
			canvas.Path(fmt.Sprintf("M%d %d %d %d %d %dz", x, y-r, x+r, y+r, x-r, y+r), class)
		default:
			canvas.Circle(x, y, r, class)
		}
	}
}

func (p *Plot) renderArea(canvas *svg.SVG, num int, f frame) {
	path := p.pathThrough(f, true)
	if len(path) == 0 {
		return
	}
	canvas.Path(string(path), fmt.Sprintf(`class="plot-area plot-%d"`, num))
}

// pathThrough builds path data through the series' finite points. A
// non-finite point breaks the path into a new subpath, the way a gap in
// the data should read. When closed, the first and last finite points
// are dropped to the y=0 baseline for an area fill.
func (p *Plot) pathThrough(f frame, closed bool) []byte {
	var path []byte
	base := f.mapY(0)
	inLine := false
	var prevX float64
	for _, pt := range p.series.Points {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			inLine = false
			continue
		}
		x, y := f.mapX(pt.X), f.mapY(pt.Y)
		if !inLine {
			if closed && len(path) > 0 {
				// Close the previous subpath at the baseline.
				path = appendCoord(path, prevX)
				path = appendCoord(path, base)
			}
			path = append(path, 'M')
			if closed {
				path = appendCoord(path, x)
				path = appendCoord(path, base)
			}
			inLine = true
		}
		path = appendCoord(path, x)
		path = appendCoord(path, y)
		prevX = x
	}
	if len(path) == 0 {
		return nil
	}
	if closed {
		path = appendCoord(path, prevX)
		path = appendCoord(path, base)
	}
	return path
}

func (p *Plot) renderLabels(canvas *svg.SVG, f frame) {
	const labelOffset = 8
	for _, pt := range p.series.Points {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			continue
		}
		x := int(math.Round(f.mapX(pt.X)))
		y := int(math.Round(f.mapY(pt.Y)))
		dy := -(labelOffset + p.markerSize)
		if p.labelBelow {
			dy = labelOffset + p.markerSize + 6
		}
		text := "(" + formatFloat(pt.X) + ", " + formatFloat(pt.Y) + ")"
		canvas.Text(x, y+dy, text, `class="point-label" text-anchor="middle"`)
	}
}
