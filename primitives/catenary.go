// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// newtonIters is the fixed number of Newton iterations used to place
// the catenary endpoints on the curve.
const newtonIters = 10

// catenary is the hanging-chain curve y = a*cosh(x/a).
func catenary(x, a float32) float32 {
	return a * math32.Cosh(x/a)
}

func catenaryDx(x, a float32) float32 {
	return math32.Sinh(x / a)
}

// NewCatenary returns a polyline approximating the curve of a chain
// or rope hanging between start and end, split into the given number
// of segments. sag adjusts how much the curve droops: tension is the
// horizontal span divided by sag, so larger sag hangs lower and the
// shape is invariant as the endpoints move apart. The first and last
// sampled points are the exact input endpoints, not curve
// evaluations, regardless of the Newton solve residual. For extreme
// sag/span ratios the solve may not converge; the result is then a
// best-effort approximation.
func NewCatenary(start, end math32.Vector3, sag float32, segments int) *mesh.Mesh {
	sxz := math32.Vec2(start.X, start.Z)
	exz := math32.Vec2(end.X, end.Z)
	dx := exz.Sub(sxz).Length()
	dy := start.Y - end.Y

	// invert and scale by the span: at low tension the curve droops
	// toward negative infinity
	tension := dx / sag

	// no closed form places the endpoints on the curve for a given
	// height difference; approximate with Newton's method
	xOff := -dx / 2
	for i := 0; i < newtonIters; i++ {
		resid := catenary(xOff, tension) - catenary(xOff+dx, tension) - dy
		deriv := catenaryDx(xOff, tension) - catenaryDx(xOff+dx, tension)
		xOff -= resid / deriv
	}
	yOff := start.Y - catenary(xOff, tension)

	return NewLine(func(i int) math32.Vector3 {
		switch i {
		case 0:
			return start
		case segments:
			return end
		}
		t := float32(i) / float32(segments)
		xz := sxz.Add(exz.Sub(sxz).MulScalar(t))
		y := catenary(t*dx+xOff, tension) + yOff
		return math32.Vec3(xz.X, y, xz.Y)
	}, segments)
}
