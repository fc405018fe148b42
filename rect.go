// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

// Edge identifies one side of a chart.
type Edge int

const (
	Top Edge = iota
	Left
	Bottom
	Right
)

// A rect is a pixel-space layout rectangle. Chart layout carves the
// viewport into title, axis and plot regions by splitting rects off its
// edges.
type rect struct {
	x, y, w, h int
}

func (r rect) right() int  { return r.x + r.w }
func (r rect) bottom() int { return r.y + r.h }

// inset returns r shrunk by v on all edges. Never inverts: widths and
// heights bottom out at zero.
func (r rect) inset(v int) rect {
	w, h := r.w-2*v, r.h-2*v
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return rect{r.x + v, r.y + v, w, h}
}

// split removes a band of the given size from edge e of r and returns
// it. The band is clamped to what r can spare.
func (r *rect) split(e Edge, v int) rect {
	switch e {
	case Top:
		if v > r.h {
			v = r.h
		}
		s := rect{r.x, r.y, r.w, v}
		r.y += v
		r.h -= v
		return s
	case Bottom:
		if v > r.h {
			v = r.h
		}
		r.h -= v
		return rect{r.x, r.y + r.h, r.w, v}
	case Left:
		if v > r.w {
			v = r.w
		}
		s := rect{r.x, r.y, v, r.h}
		r.x += v
		r.w -= v
		return s
	default: // Right
		if v > r.w {
			v = r.w
		}
		r.w -= v
		return rect{r.x + r.w, r.y, v, r.h}
	}
}

// intersectHoriz narrows r's horizontal extent to that of area, so a
// band split off the top or bottom of the viewport lines up with the
// plot area rather than spanning the corner regions.
func (r *rect) intersectHoriz(area rect) {
	x := r.x
	if area.x > x {
		x = area.x
	}
	x2 := r.right()
	if area.right() < x2 {
		x2 = area.right()
	}
	r.x, r.w = x, x2-x
}

// intersectVert is the vertical analog of intersectHoriz.
func (r *rect) intersectVert(area rect) {
	y := r.y
	if area.y > y {
		y = area.y
	}
	y2 := r.bottom()
	if area.bottom() < y2 {
		y2 = area.bottom()
	}
	r.y, r.h = y, y2-y
}
