// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/segloss/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: B=2, H=1, W=2, C=2 holding 1..8 in NHWC order.
//
//	b=0: (w0: 1,2) (w1: 3,4)
//	b=1: (w0: 5,6) (w1: 7,8)
var reduceShape = tensor.Shape{B: 2, H: 1, W: 2, C: 2}

func TestSumSpatial(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, reduceShape, seq(8))
	got, err := tensor.SumSpatial(x)
	require.NoError(t, err)

	want := [][]float64{{4, 6}, {12, 14}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SumSpatial mismatch (-want +got):\n%s", diff)
	}
}

func TestSumBatchSpatial(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, reduceShape, seq(8))
	got, err := tensor.SumBatchSpatial(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{16, 20}, got)
}

func TestSumMean(t *testing.T) {
	t.Parallel()

	x := MustFromSlice(t, reduceShape, seq(8))
	s, err := tensor.Sum(x)
	require.NoError(t, err)
	assert.Equal(t, 36.0, s)

	m, err := tensor.Mean(x)
	require.NoError(t, err)
	assert.Equal(t, 4.5, m)
}

func TestReductions_Nil(t *testing.T) {
	t.Parallel()

	_, err := tensor.SumSpatial(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.SumBatchSpatial(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Sum(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Mean(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFromSlice(t, reduceShape, seq(8))
	b, err := tensor.AddScalar(a, 1e-10)
	require.NoError(t, err)

	ok, err := tensor.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tensor.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	c := MustFromSlice(t, tensor.Shape{B: 1, H: 1, W: 1, C: 8}, seq(8))
	_, err = tensor.AllClose(a, c, 0, 1)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}
