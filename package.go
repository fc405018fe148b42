// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot renders 2-D numeric data series as SVG markup.
//
// svgplot has no rendering engine: a caller describes a chart (data
// series, axes, domain bounds, titles) and the library deterministically
// emits SVG text. It performs no file I/O, loads no fonts, and consults
// no clocks, so it is safe to run in restricted sandboxes; rendering the
// same chart twice yields byte-identical output.
//
// A Chart is assembled with a fluent builder and rendered with WriteSVG
// or String:
//
//	data := svgplot.XY(13, 74, 111, 37, 125, 52, 190, 66)
//	c := svgplot.NewChart().
//		Title("Line Plot").
//		Domain(svgplot.DomainFrom(svgplot.NewSeries("Series A", data...))).
//		Axis("X Axis", svgplot.Bottom).
//		Axis("Y Axis", svgplot.Left).
//		Plot(svgplot.Line(svgplot.NewSeries("Series A", data...)))
//	c.WriteSVG(os.Stdout)
//
// A Page stacks several charts into one document.
//
// Styling
//
// svgplot emits structure, not style. Every generated element carries a
// stable class so an external stylesheet controls color, stroke and
// font:
//
//	chart-frame   the background rectangle of a chart
//	title         chart title text
//	axis-line     an axis baseline with its tick marks (one path per axis)
//	tick-label    a tick's text label
//	axis-name     the name of an axis
//	plot-line     a line plot's path (also its single-point dot artifact)
//	plot-area     an area plot's filled path
//	plot-marker   one scatter marker
//	point-label   a per-point annotation
//	legend-item   one legend entry
//
// Plot geometry additionally carries "plot-N" where N is the plot's
// declaration index, so sibling series can be styled independently. CSS
// passed to Chart.Style is treated as opaque text and emitted verbatim.
//
// Rendering never fails: degenerate domains fall back to a synthesized
// span, empty series produce empty geometry, and out-of-domain points
// are plotted unclipped outside the visible frame.
package svgplot

import (
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a chart, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[svgplot] ", log.Lshortfile)
