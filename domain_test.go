// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"math"
	"testing"
)

var seriesA = NewSeries("Series A", XY(13, 74, 111, 37, 125, 52, 190, 66)...)
var seriesB = NewSeries("Series B", XY(22, 50, 105, 44, 120, 67, 180, 39, 210, 43)...)

func TestDomainFrom(t *testing.T) {
	d := DomainFrom(seriesA)
	want := Domain{XMin: 13, XMax: 190, YMin: 37, YMax: 74}
	if d != want {
		t.Errorf("DomainFrom = %+v, want %+v", d, want)
	}
}

func TestDomainFromEmpty(t *testing.T) {
	want := Domain{0, 1, 0, 1}
	if d := DomainFrom(); d != want {
		t.Errorf("DomainFrom() = %+v, want %+v", d, want)
	}
	if d := DomainFrom(NewSeries("empty")); d != want {
		t.Errorf("DomainFrom(empty) = %+v, want %+v", d, want)
	}
}

func TestDomainIncluding(t *testing.T) {
	d := DomainFrom(seriesA).Including(seriesB)
	want := Domain{XMin: 13, XMax: 210, YMin: 37, YMax: 74}
	if d != want {
		t.Errorf("Including = %+v, want %+v", d, want)
	}
	// Including nothing changes nothing.
	if d2 := d.Including(); d2 != d {
		t.Errorf("Including() = %+v, want %+v", d2, d)
	}
}

// TestDomainExplicitX exercises the documented mapping: derived bounds
// overridden with [0,200] must map x=13 to 0.065 and x=190 to 0.95.
func TestDomainExplicitX(t *testing.T) {
	d := DomainFrom(seriesA).WithX(0, 200)
	s := d.xScale()
	if got := s.Norm(13); math.Abs(got-0.065) > 1e-9 {
		t.Errorf("Norm(13) = %v, want 0.065", got)
	}
	if got := s.Norm(190); math.Abs(got-0.95) > 1e-9 {
		t.Errorf("Norm(190) = %v, want 0.95", got)
	}
}

func TestDomainWithReversed(t *testing.T) {
	d := Domain{}.WithX(200, 0).WithY(10, -10)
	if d.XMin != 0 || d.XMax != 200 {
		t.Errorf("WithX(200,0) = [%v,%v], want [0,200]", d.XMin, d.XMax)
	}
	if d.YMin != -10 || d.YMax != 10 {
		t.Errorf("WithY(10,-10) = [%v,%v], want [-10,10]", d.YMin, d.YMax)
	}
}

func TestDomainNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	s := NewSeries("s", Pt(1, 2), Pt(nan, 50), Pt(inf, inf), Pt(3, 4))
	d := DomainFrom(s)
	want := Domain{XMin: 1, XMax: 3, YMin: 2, YMax: 4}
	if d != want {
		t.Errorf("DomainFrom = %+v, want %+v", d, want)
	}
}

func TestXYUnpaired(t *testing.T) {
	pts := XY(1, 2, 3)
	if len(pts) != 1 || pts[0] != Pt(1, 2) {
		t.Errorf("XY(1,2,3) = %v, want [(1,2)]", pts)
	}
}
