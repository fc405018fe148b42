// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

// A Point is one 2-D datum.
type Point struct {
	X, Y float64
}

// Pt returns the Point (x, y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

// XY builds a point slice from interleaved x, y values. A trailing
// unpaired value is dropped.
func XY(vals ...float64) []Point {
	pts := make([]Point, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		pts = append(pts, Point{vals[i], vals[i+1]})
	}
	return pts
}

// A Series is a named, ordered sequence of points. The library never
// mutates a Series; plots borrow the caller's slice for the duration of
// a render.
type Series struct {
	Name   string
	Points []Point
}

// NewSeries returns a named series over pts.
func NewSeries(name string, pts ...Point) Series {
	return Series{Name: name, Points: pts}
}
