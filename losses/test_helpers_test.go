// SPDX-License-Identifier: MIT
// Package losses_test contains test helpers
//
// Purpose:
//   • Deterministic mask fixtures (fixed seeds, finite data only).
//   • A central-difference gradient checker shared by gradient tests.

package losses_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/segloss/tensor"
	"github.com/stretchr/testify/require"
)

// shape1221 is the 1×2×2×1 tensor used by the reference scenarios.
var shape1221 = tensor.Shape{B: 1, H: 2, W: 2, C: 1}

// MustTensor builds a tensor from NHWC data or fails the test.
func MustTensor(t testing.TB, s tensor.Shape, data []float64) *tensor.Dense {
	t.Helper()
	x, err := tensor.FromSlice(s, data)
	require.NoError(t, err)

	return x
}

// MustFull builds a constant tensor or fails the test.
func MustFull(t testing.TB, s tensor.Shape, v float64) *tensor.Dense {
	t.Helper()
	x, err := tensor.Full(s, v)
	require.NoError(t, err)

	return x
}

// RandomMaskPair returns a binary ground truth and a soft prediction in
// [lo, hi) drawn from a fixed seed.
func RandomMaskPair(t testing.TB, s tensor.Shape, seed int64, lo, hi float64) (gt, pr *tensor.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := make([]float64, s.Len())
	p := make([]float64, s.Len())
	for i := range g {
		if rng.Float64() < 0.4 {
			g[i] = 1
		}
		p[i] = lo + (hi-lo)*rng.Float64()
	}

	return MustTensor(t, s, g), MustTensor(t, s, p)
}

// NumericGrad estimates ∂f/∂pr by central differences with step h.
func NumericGrad(t testing.TB, f func(gt, pr *tensor.Dense) (float64, error), gt, pr *tensor.Dense, h float64) []float64 {
	t.Helper()
	base := pr.Values()
	out := make([]float64, len(base))
	for i := range base {
		plus := append([]float64(nil), base...)
		minus := append([]float64(nil), base...)
		plus[i] += h
		minus[i] -= h

		fp, err := f(gt, MustTensor(t, pr.Shape(), plus))
		require.NoError(t, err)
		fm, err := f(gt, MustTensor(t, pr.Shape(), minus))
		require.NoError(t, err)
		out[i] = (fp - fm) / (2 * h)
	}

	return out
}
