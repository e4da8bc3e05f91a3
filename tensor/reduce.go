// SPDX-License-Identifier: MIT

// Package tensor - axis reductions.
//
// Purpose:
//   - Sum over the spatial axes (H, W) per image and per channel, or over
//     (B, H, W) per channel, which are the two aggregation modes of
//     segmentation metrics.
//   - Whole-tensor Sum/Mean for element-averaged losses.
//   - AllClose for tolerant comparisons in tests and examples.
//
// Determinism:
//   - Fixed loop order b → h → w → c; float accumulation order is therefore
//     stable across calls, which keeps results bit-reproducible.

package tensor

import (
	"math"

	"github.com/samber/lo"
)

const (
	opSumSpatial      = "SumSpatial"
	opSumBatchSpatial = "SumBatchSpatial"
	opSum             = "Sum"
	opMean            = "Mean"
	opAllClose        = "AllClose"
)

// SumSpatial reduces over (H, W) and returns a [B][C] table:
// out[b][c] = Σ_h Σ_w x[b,h,w,c].
// Errors: ErrNilTensor.
// Complexity: O(n) time, O(B*C) space.
func SumSpatial(x *Dense) ([][]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opSumSpatial, err)
	}
	s := x.shape
	out := make([][]float64, s.B)
	pix := s.H * s.W // pixels per image
	for b := 0; b < s.B; b++ {
		row := make([]float64, s.C)
		base := b * pix * s.C
		for p := 0; p < pix; p++ {
			off := base + p*s.C
			for c := 0; c < s.C; c++ {
				row[c] += x.data[off+c]
			}
		}
		out[b] = row
	}

	return out, nil
}

// SumBatchSpatial reduces over (B, H, W) and returns a length-C vector:
// out[c] = Σ_b Σ_h Σ_w x[b,h,w,c].
// Errors: ErrNilTensor.
// Complexity: O(n) time, O(C) space.
func SumBatchSpatial(x *Dense) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opSumBatchSpatial, err)
	}
	c := x.shape.C
	out := make([]float64, c)
	for i, v := range x.data {
		out[i%c] += v
	}

	return out, nil
}

// Sum returns the sum of every element.
func Sum(x *Dense) (float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return 0, tensorErrorf(opSum, err)
	}

	return lo.Sum(x.data), nil
}

// Mean returns the arithmetic mean over all four axes.
func Mean(x *Dense) (float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return 0, tensorErrorf(opMean, err)
	}

	return lo.Sum(x.data) / float64(len(x.data)), nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Negative tolerances are treated as their absolute values.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, tensorErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > atol+rtol*math.Abs(b.data[i]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
