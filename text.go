// Copyright 2025 The svgplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"io"
	"strconv"
)

// floatPrecision is the display precision shared by tick labels, point
// labels and path coordinates. All float formatting in the package goes
// through formatFloat or appendCoord so that a coordinate and the label
// derived from the same value can never disagree on rounding.
const floatPrecision = 6

// formatFloat renders v in the shortest form that round-trips within
// floatPrecision significant digits, trimming redundant trailing
// precision ("2.5", not "2.50000").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', floatPrecision, 64)
}

// appendCoord appends v to SVG path data.
func appendCoord(path []byte, v float64) []byte {
	path = append(path, ' ')
	return strconv.AppendFloat(path, v, 'g', floatPrecision, 64)
}

// Anchor selects where text attaches to its position.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// attr returns the SVG text-anchor attribute for a.
func (a Anchor) attr() string {
	switch a {
	case AnchorStart:
		return `text-anchor="start"`
	case AnchorEnd:
		return `text-anchor="end"`
	}
	return `text-anchor="middle"`
}

// An errWriter forwards writes to w and retains the first error so a
// whole render can run unconditionally and report one failure at the
// end. Rendering itself cannot fail; the underlying writer can.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil && ew.err == nil {
		ew.err = err
	}
	return n, err
}
