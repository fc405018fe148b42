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

// A Page stacks charts vertically into one SVG document. It is purely a
// layout wrapper: each chart keeps its own size and renders into its
// own positioned container, with no cross-chart negotiation.
type Page struct {
	charts []*Chart
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{}
}

// Chart appends a chart to the page.
func (p *Page) Chart(c *Chart) *Page {
	p.charts = append(p.charts, c)
	return p
}

// WriteSVG renders the page: one document sized to the widest chart and
// the sum of chart heights, each chart inside its own <g class="chart">
// container. An empty page renders an empty wrapper. The returned error
// is the writer's, never the renderer's.
func (p *Page) WriteSVG(w io.Writer) error {
	width, height := 0, 0
	for _, c := range p.charts {
		if c.width > width {
			width = c.width
		}
		height += c.height
	}
	if width == 0 {
		width = DefaultWidth
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	y := 0
	for _, c := range p.charts {
		canvas.Group(fmt.Sprintf(`class="chart" transform="translate(0 %d)"`, y))
		c.render(canvas, ew)
		canvas.Gend()
		y += c.height
	}
	canvas.End()
	return ew.err
}

// String renders the page to a string.
func (p *Page) String() string {
	var buf bytes.Buffer
	p.WriteSVG(&buf)
	return buf.String()
}
