// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo"
)

func renderAxis(a *Axis, strip, area rect, s Scale) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	a.render(canvas, strip, area, s)
	return buf.String()
}

func TestAxisBottom(t *testing.T) {
	strip := rect{0, 100, 200, 40}
	area := rect{0, 0, 200, 100}
	out := renderAxis(NewAxis("X Axis", Bottom), strip, area, NewScale(0, 100))
	if n := strings.Count(out, `class="axis-line"`); n != 1 {
		t.Fatalf("got %d axis-line elements, want 1: %q", n, out)
	}
	// Baseline along the shared edge, ticks at 0, 50, 100.
	for _, want := range []string{"M0 100h200", " M0 100v6", " M100 100v6", " M200 100v6"} {
		if !strings.Contains(out, want) {
			t.Errorf("axis path missing %q: %q", want, out)
		}
	}
	if n := strings.Count(out, `class="tick-label"`); n != 3 {
		t.Errorf("got %d tick labels, want 3", n)
	}
	if !strings.Contains(out, `class="axis-name"`) || !strings.Contains(out, "X Axis") {
		t.Errorf("axis name missing: %q", out)
	}
}

func TestAxisTop(t *testing.T) {
	strip := rect{0, 0, 200, 40}
	area := rect{0, 40, 200, 100}
	out := renderAxis(NewAxis("", Top), strip, area, NewScale(0, 100))
	if !strings.Contains(out, "M0 40h200") {
		t.Errorf("top baseline missing: %q", out)
	}
	if !strings.Contains(out, "v-6") {
		t.Errorf("top ticks should point up: %q", out)
	}
	// Unnamed axis renders no name label.
	if strings.Contains(out, `class="axis-name"`) {
		t.Errorf("unnamed axis rendered a name: %q", out)
	}
}

func TestAxisLeft(t *testing.T) {
	strip := rect{0, 0, 40, 100}
	area := rect{40, 0, 200, 100}
	out := renderAxis(NewAxis("Y Axis", Left), strip, area, NewScale(0, 100))
	if !strings.Contains(out, "M40 0v100") {
		t.Errorf("left baseline missing: %q", out)
	}
	if !strings.Contains(out, "h-6") {
		t.Errorf("left ticks should point out: %q", out)
	}
	if !strings.Contains(out, `text-anchor="end"`) {
		t.Errorf("left tick labels should anchor at end: %q", out)
	}
	if !strings.Contains(out, "rotate(-90)") {
		t.Errorf("left axis name should be rotated: %q", out)
	}
	// Normalized 0 sits at the bottom of the area.
	if !strings.Contains(out, " M40 100h-6") {
		t.Errorf("tick for 0 not at bottom: %q", out)
	}
}

func TestAxisRight(t *testing.T) {
	strip := rect{240, 0, 40, 100}
	area := rect{40, 0, 200, 100}
	out := renderAxis(NewAxis("", Right), strip, area, NewScale(0, 100))
	if !strings.Contains(out, "M240 0v100") {
		t.Errorf("right baseline missing: %q", out)
	}
	if !strings.Contains(out, `text-anchor="start"`) {
		t.Errorf("right tick labels should anchor at start: %q", out)
	}
}

var tickLabelX = regexp.MustCompile(`<text x="(-?[0-9]+)" [^>]*class="tick-label"[^>]*>([^<]+)</text>`)

// labelXs maps each rendered tick label to its x position.
func labelXs(out string) map[string]string {
	m := make(map[string]string)
	for _, g := range tickLabelX.FindAllStringSubmatch(out, -1) {
		m[g[2]] = g[1]
	}
	return m
}

func TestAxisInverted(t *testing.T) {
	strip := rect{0, 100, 200, 40}
	area := rect{0, 0, 200, 100}
	normal := labelXs(renderAxis(NewAxis("", Bottom), strip, area, NewScale(0, 100)))
	inverted := labelXs(renderAxis(NewAxis("", Bottom).Inverted(), strip, area, NewScale(0, 100)))
	if normal["0"] != "0" || normal["100"] != "200" {
		t.Errorf("normal axis label positions: %v", normal)
	}
	if inverted["0"] != "200" || inverted["100"] != "0" {
		t.Errorf("inverted axis label positions: %v", inverted)
	}
}

func TestAxisMaxTicks(t *testing.T) {
	strip := rect{0, 100, 200, 40}
	area := rect{0, 0, 200, 100}
	out := renderAxis(NewAxis("", Bottom).MaxTicks(11), strip, area, NewScale(0, 100))
	if n := strings.Count(out, `class="tick-label"`); n != 11 {
		t.Errorf("got %d tick labels, want 11", n)
	}
}

// TestAxisDegenerateScale: a zero-span domain still renders ticks over
// the synthesized span without faulting.
func TestAxisDegenerateScale(t *testing.T) {
	strip := rect{0, 100, 200, 40}
	area := rect{0, 0, 200, 100}
	out := renderAxis(NewAxis("", Bottom), strip, area, NewScale(7, 7))
	if n := strings.Count(out, `class="tick-label"`); n < 1 {
		t.Errorf("degenerate axis rendered no ticks: %q", out)
	}
}
