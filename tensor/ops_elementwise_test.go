// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/segloss/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shape122 = tensor.Shape{B: 1, H: 2, W: 2, C: 1}

// TestBinaryKernels checks Add/Sub/Mul values and that inputs stay untouched.
func TestBinaryKernels(t *testing.T) {
	t.Parallel()

	a := MustFromSlice(t, shape122, []float64{1, 0, 0.5, 1})
	b := MustFromSlice(t, shape122, []float64{1, 1, 0.5, 0})

	tests := []struct {
		name string
		fn   func(a, b *tensor.Dense) (*tensor.Dense, error)
		want []float64
	}{
		{"Add", tensor.Add, []float64{2, 1, 1, 1}},
		{"Sub", tensor.Sub, []float64{0, -1, 0, 1}},
		{"Mul", tensor.Mul, []float64{1, 0, 0.25, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Values())
			assert.Equal(t, []float64{1, 0, 0.5, 1}, a.Values(), "operand a mutated")
			assert.Equal(t, []float64{1, 1, 0.5, 0}, b.Values(), "operand b mutated")
		})
	}
}

// TestBinaryKernels_Errors covers nil operands and shape mismatch.
func TestBinaryKernels_Errors(t *testing.T) {
	t.Parallel()

	a := MustFromSlice(t, shape122, []float64{1, 2, 3, 4})
	b := MustFromSlice(t, tensor.Shape{B: 1, H: 1, W: 4, C: 1}, []float64{1, 2, 3, 4})

	_, err := tensor.Add(a, b)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Mul(nil, a)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Sub(a, nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

// TestGreater_Strict verifies ties map to 0 and the result is a 0/1 mask.
func TestGreater_Strict(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, shape122, []float64{0.2, 0.5, 0.50001, 1})
	got, err := tensor.Greater(x, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, got.Values())

	again, err := tensor.Greater(x, 0.5)
	require.NoError(t, err)
	assert.Equal(t, got.Values(), again.Values())
}

// TestScaleAddScalar covers the scalar kernels.
func TestScaleAddScalar(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, shape122, []float64{1, 2, 3, 4})
	s, err := tensor.Scale(x, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -4, -6, -8}, s.Values())

	p, err := tensor.AddScalar(x, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, p.Values())
}

// TestClip bounds values and rejects inverted or NaN ranges.
func TestClip(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, shape122, []float64{-1, 0.3, 1, 2})
	got, err := tensor.Clip(x, 0.1, 0.9)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.3, 0.9, 0.9}, got.Values())

	_, err = tensor.Clip(x, 1, 0)
	assert.ErrorIs(t, err, tensor.ErrBadRange)
	_, err = tensor.Clip(x, math.NaN(), 1)
	assert.ErrorIs(t, err, tensor.ErrBadRange)
}

// TestLogApply covers Log (including log 0) and Apply.
func TestLogApply(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, shape122, []float64{1, math.E, 0, 4})
	l, err := tensor.Log(x)
	require.NoError(t, err)
	vals := l.Values()
	assert.Equal(t, 0.0, vals[0])
	assert.InDelta(t, 1.0, vals[1], 1e-15)
	assert.True(t, math.IsInf(vals[2], -1))

	sq, err := tensor.Apply(x, func(v float64) float64 { return v * v })
	require.NoError(t, err)
	assert.Equal(t, 16.0, sq.Values()[3])

	_, err = tensor.Apply(x, nil)
	assert.ErrorIs(t, err, tensor.ErrNilFunc)
}

// TestKernels_InheritPolicy ensures results keep the first operand's policy.
func TestKernels_InheritPolicy(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, shape122, []float64{1, 2, 3, 4}, tensor.WithNoValidateNaNInf())
	y, err := tensor.Scale(x, 1)
	require.NoError(t, err)
	require.NoError(t, y.Set(0, 0, 0, 0, math.Inf(1)))

	z := MustFromSlice(t, shape122, []float64{1, 2, 3, 4})
	w, err := tensor.Scale(z, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, w.Set(0, 0, 0, 0, math.Inf(1)), tensor.ErrNaNInf)
}
