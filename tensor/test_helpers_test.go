// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and reductions.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/segloss/tensor"
	"github.com/stretchr/testify/require"
)

// MustFromSlice builds a tensor from NHWC data or fails the test.
func MustFromSlice(t *testing.T, s tensor.Shape, data []float64, opts ...tensor.Option) *tensor.Dense {
	t.Helper()
	x, err := tensor.FromSlice(s, data, opts...)
	require.NoError(t, err, "FromSlice(%v)", s)

	return x
}

// MustAt reads (b,h,w,c) or fails the test.
func MustAt(t *testing.T, x *tensor.Dense, b, h, w, c int) float64 {
	t.Helper()
	v, err := x.At(b, h, w, c)
	require.NoError(t, err)

	return v
}

// seq returns 1, 2, ..., n as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}
