// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// defaultHalfSpan is half the span synthesized for a degenerate domain
// (min == max), so a constant series still maps to the middle of the
// plot instead of dividing by zero.
const defaultHalfSpan = 0.5

// defaultMaxTicks is the tick count an axis aims for.
const defaultMaxTicks = 5

// A Scale maps one domain dimension to the normalized interval [0, 1].
// It is a pure function of the bounds it was built from; rendering
// shares one Scale per dimension across axes and plots.
type Scale struct {
	min, max float64
	invert   bool
}

// NewScale returns a linear scale over [min, max]. Reversed bounds are
// swapped rather than rejected.
func NewScale(min, max float64) Scale {
	if max < min {
		min, max = max, min
	}
	return Scale{min: min, max: max}
}

// Invert returns a copy of s mapping min to 1 and max to 0, so an axis
// can grow downward or leftward without altering the domain.
func (s Scale) Invert() Scale {
	s.invert = !s.invert
	return s
}

// span returns the effective bounds, expanding a degenerate domain to a
// symmetric synthesized span.
func (s Scale) span() (lo, hi float64) {
	if s.max > s.min {
		return s.min, s.max
	}
	return s.min - defaultHalfSpan, s.max + defaultHalfSpan
}

// Norm maps v to the unit interval: Norm(min) == 0 and Norm(max) == 1
// exactly. The result is not clamped; out-of-domain values map outside
// [0, 1] and are plotted outside the visible frame.
func (s Scale) Norm(v float64) float64 {
	lo, hi := s.span()
	t := (v - lo) / (hi - lo)
	if s.invert {
		t = 1 - t
	}
	return t
}

// A Tick is one axis tick: its domain value, its clamped normalized
// position, and its display label.
type Tick struct {
	Value float64
	Norm  float64
	Label string
}

// Ticks returns at most max human-friendly ticks within the scale's
// effective span. Tick values fall on multiples of {1, 2, 5}×10^k; the
// level search is delegated to go-moremath. A span that admits no grid
// tick at all still yields one tick at the domain midpoint.
func (s Scale) Ticks(max int) []Tick {
	if max <= 0 {
		max = defaultMaxTicks
	}
	lo, hi := s.span()
	o := scale.TickOptions{Max: max}
	count := func(level int) int {
		i0, i1, ok := tickBounds(lo, hi, level)
		if !ok {
			// Unrepresentable spacing counts as "too many"
			// so FindLevel keeps moving up.
			return 1 << 30
		}
		if i1 < i0 {
			return 0
		}
		return int(i1 - i0 + 1)
	}
	ticksAt := func(level int) []float64 {
		i0, i1, ok := tickBounds(lo, hi, level)
		if !ok || i1 < i0 {
			return nil
		}
		spacing := tickSpacing(level)
		vals := make([]float64, 0, i1-i0+1)
		for i := i0; i <= i1; i++ {
			vals = append(vals, float64(i)*spacing)
		}
		return vals
	}
	var vals []float64
	if level, ok := o.FindLevel(funcTicker{count, ticksAt}, 0); ok {
		vals = ticksAt(level)
	}
	if len(vals) == 0 {
		vals = []float64{(lo + hi) / 2}
	}
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Norm: clamp01(s.Norm(v)), Label: formatFloat(v)}
	}
	return ticks
}

// funcTicker adapts the count/ticksAt closures to the scale.Ticker
// interface that the pinned go-moremath FindLevel requires.
type funcTicker struct {
	count func(level int) int
	ticks func(level int) []float64
}

func (t funcTicker) CountTicks(level int) int           { return t.count(level) }
func (t funcTicker) TicksAtLevel(level int) interface{} { return t.ticks(level) }

// tickSpacing returns the tick spacing at a level: consecutive levels
// cycle through 1, 2, 5 within each power of ten.
func tickSpacing(level int) float64 {
	div, mod := level/3, level%3
	if mod < 0 {
		div--
		mod += 3
	}
	mantissa := [3]float64{1, 2, 5}
	return mantissa[mod] * math.Pow(10, float64(div))
}

// tickBounds returns the inclusive multiplier range of level's spacing
// inside [lo, hi]. ok is false when the spacing underflows or the range
// is too large to enumerate.
func tickBounds(lo, hi float64, level int) (i0, i1 int64, ok bool) {
	spacing := tickSpacing(level)
	if spacing <= 0 || math.IsInf(spacing, 0) {
		return 0, 0, false
	}
	// Nudge by an epsilon so bounds that sit exactly on the grid
	// keep their ticks despite floating error.
	const eps = 1e-9
	f0 := math.Ceil(lo/spacing - eps)
	f1 := math.Floor(hi/spacing + eps)
	if f1-f0 > 1e9 || math.IsNaN(f0) || math.IsNaN(f1) {
		return 0, 0, false
	}
	return int64(f0), int64(f1), true
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
