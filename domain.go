// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
)

// A Domain is the data-space value range a chart's axes cover.
// XMin <= XMax and YMin <= YMax always hold; a collapsed dimension
// (min == max) is legal and expanded to a synthesized span at scale
// time. A Domain is immutable once attached to a Chart.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DomainFrom scans the given series and returns the tightest Domain
// bounding every finite point. With no finite data it returns the unit
// domain [0,1]×[0,1].
func DomainFrom(series ...Series) Domain {
	xs, ys := coords(series)
	if len(xs) == 0 {
		return Domain{0, 1, 0, 1}
	}
	return Domain{
		XMin: slice.Min(xs).(float64),
		XMax: slice.Max(xs).(float64),
		YMin: slice.Min(ys).(float64),
		YMax: slice.Max(ys).(float64),
	}
}

// Including widens d to cover the given series as well.
func (d Domain) Including(series ...Series) Domain {
	xs, ys := coords(series)
	if len(xs) == 0 {
		return d
	}
	d.XMin = math.Min(d.XMin, slice.Min(xs).(float64))
	d.XMax = math.Max(d.XMax, slice.Max(xs).(float64))
	d.YMin = math.Min(d.YMin, slice.Min(ys).(float64))
	d.YMax = math.Max(d.YMax, slice.Max(ys).(float64))
	return d
}

// WithX replaces the derived X bounds with explicit ones. Explicit
// bounds always take precedence and are used exactly as given (no
// rounding to tick boundaries). Reversed bounds are swapped.
func (d Domain) WithX(min, max float64) Domain {
	if max < min {
		min, max = max, min
	}
	d.XMin, d.XMax = min, max
	return d
}

// WithY replaces the derived Y bounds with explicit ones.
func (d Domain) WithY(min, max float64) Domain {
	if max < min {
		min, max = max, min
	}
	d.YMin, d.YMax = min, max
	return d
}

// xScale and yScale derive the shared per-dimension scales.
func (d Domain) xScale() Scale { return NewScale(d.XMin, d.XMax) }
func (d Domain) yScale() Scale { return NewScale(d.YMin, d.YMax) }

// coords flattens the finite points of series into coordinate slices.
func coords(series []Series) (xs, ys []float64) {
	for _, s := range series {
		for _, pt := range s.Points {
			if isFinite(pt.X) && isFinite(pt.Y) {
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
			}
		}
	}
	return
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
