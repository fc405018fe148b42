// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

// DefaultStyle is a minimal stylesheet for the classes the library
// emits. It is plain text a caller may pass to Chart.Style, extend, or
// ignore entirely; the library itself never applies it.
const DefaultStyle = `.chart-frame { fill: white; stroke: #808080; }
.title { font-size: 18px; fill: #404040; }
.axis-line { stroke: #808080; fill: none; }
.tick-label { font-size: 12px; fill: #404040; }
.axis-name { font-size: 14px; fill: #404040; }
.plot-line { stroke: steelblue; fill: none; stroke-width: 2; }
.plot-line.plot-1 { stroke: darkorange; }
.plot-area { fill: steelblue; fill-opacity: 0.4; stroke: none; }
.plot-area.plot-1 { fill: darkorange; }
.plot-marker { fill: steelblue; }
.plot-marker.plot-1 { fill: darkorange; }
.point-label { font-size: 11px; fill: #404040; }
.legend-item { font-size: 12px; fill: #404040; }
`
