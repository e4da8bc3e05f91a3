// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Provide the element-wise kernels a loss function needs: binary
//     arithmetic, scalar arithmetic, comparison-to-mask, clipping and log.
//   - Keep all loops deterministic (flat 0..n-1 over the NHWC buffer).
//
// Design:
//   - Every kernel allocates a fresh output; inputs are never mutated.
//   - Binary kernels share one private driver (ewBinary) to avoid duplicating
//     validation and loops.
//   - The result inherits the numeric policy of the first operand.

package tensor

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opAddScalar = "AddScalar"
	opGreater   = "Greater"
	opClip      = "Clip"
	opLog       = "Log"
	opApply     = "Apply"
)

// ewBinary computes out[i] = fn(a[i], b[i]) after nil and shape validation.
// Time: O(n). Space: O(n).
func ewBinary(op string, a, b *Dense, fn func(x, y float64) float64) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, tensorErrorf(op, err)
	}
	out := newLike(a)
	for i := range out.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// ewUnary computes out[i] = fn(x[i]) after nil validation.
// Time: O(n). Space: O(n).
func ewUnary(op string, x *Dense, fn func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(op, err)
	}
	out := newLike(x)
	for i, v := range x.data {
		out.data[i] = fn(v)
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) {
	return ewBinary(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a - b.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	return ewBinary(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the element-wise (Hadamard) product a ⊙ b.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func Mul(a, b *Dense) (*Dense, error) {
	return ewBinary(opMul, a, b, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha * x.
func Scale(x *Dense, alpha float64) (*Dense, error) {
	return ewUnary(opScale, x, func(v float64) float64 { return alpha * v })
}

// AddScalar returns x + v element-wise.
func AddScalar(x *Dense, v float64) (*Dense, error) {
	return ewUnary(opAddScalar, x, func(e float64) float64 { return e + v })
}

// Greater binarizes x: 1.0 where x > threshold, else 0.0.
// The comparison is strict, so ties map to 0.0. NaN entries map to 0.0.
func Greater(x *Dense, threshold float64) (*Dense, error) {
	return ewUnary(opGreater, x, func(v float64) float64 {
		if v > threshold {
			return 1
		}
		return 0
	})
}

// Clip limits every element to the closed interval [lo, hi].
// Errors: ErrNilTensor, ErrBadRange (lo > hi or a NaN bound).
func Clip(x *Dense, lo, hi float64) (*Dense, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, tensorErrorf(fmt.Sprintf("%s[%g,%g]", opClip, lo, hi), ErrBadRange)
	}

	return ewUnary(opClip, x, func(v float64) float64 {
		return math.Min(math.Max(v, lo), hi)
	})
}

// Log returns the natural logarithm of every element.
// Log(0) is -Inf and Log of a negative value is NaN, as in math.Log;
// callers that need finite values clip first.
func Log(x *Dense) (*Dense, error) {
	return ewUnary(opLog, x, math.Log)
}

// Apply maps fn over every element. fn must be pure.
func Apply(x *Dense, fn func(v float64) float64) (*Dense, error) {
	if fn == nil {
		return nil, tensorErrorf(opApply, ErrNilFunc)
	}

	return ewUnary(opApply, x, fn)
}
