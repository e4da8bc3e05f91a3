// SPDX-License-Identifier: MIT

// Package tensor - Dense NHWC storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula
//     ((b*H + h)*W + w)*C + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/Full/FromSlice: O(n); At/Set: O(1); Clone/Values: O(n).

package tensor

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "NewDense"
	ctxFromSlice = "FromSlice"
	ctxFull      = "Full"
	ctxAt        = "At"
	ctxSet       = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// tensorErrorf wraps an underlying error with the given operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, b, h, w, c int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", method, b, h, w, c, err)
}

// Dense is a concrete row-major NHWC tensor.
//   - shape holds (B, H, W, C).
//   - data is a flat buffer of length B*H*W*C.
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	shape          Shape     // (B, H, W, C), every dim > 0
	data           []float64 // contiguous NHWC storage (len == shape.Len())
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a zero tensor of the given shape.
// Implementation:
//   - Stage 1: validate every dimension > 0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//   - Stage 3: resolve numeric policy from options.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewDense(shape Shape, opts ...Option) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &Dense{
		shape:          shape,
		data:           make([]float64, shape.Len()),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromSlice creates a tensor holding a copy of data, read in NHWC order.
// Implementation:
//   - Stage 1: validate shape and len(data) == B*H*W*C.
//   - Stage 2: under the numeric policy, reject NaN/Inf entries.
//   - Stage 3: copy data into a fresh buffer (caller keeps ownership of data).
//
// Errors:
//   - ErrBadShape, ErrDataLength, ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice(shape Shape, data []float64, opts ...Option) (*Dense, error) {
	t, err := NewDense(shape, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFromSlice, err)
	}
	if len(data) != len(t.data) {
		return nil, tensorErrorf(
			fmt.Sprintf("%s: got %d values for shape %v", ctxFromSlice, len(data), shape),
			ErrDataLength,
		)
	}
	if t.validateNaNInf {
		for i, v := range data {
			if err = validateFinite(v); err != nil {
				return nil, tensorErrorf(fmt.Sprintf("%s: index %d", ctxFromSlice, i), err)
			}
		}
	}
	copy(t.data, data)

	return t, nil
}

// Full creates a tensor with every element set to v.
func Full(shape Shape, v float64, opts ...Option) (*Dense, error) {
	t, err := NewDense(shape, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFull, err)
	}
	if t.validateNaNInf {
		if err = validateFinite(v); err != nil {
			return nil, tensorErrorf(ctxFull, err)
		}
	}
	for i := range t.data {
		t.data[i] = v
	}

	return t, nil
}

// newLike allocates a zero tensor with the same shape and policy as t.
// Internal: t is assumed valid.
func newLike(t *Dense) *Dense {
	return &Dense{
		shape:          t.shape,
		data:           make([]float64, len(t.data)),
		validateNaNInf: t.validateNaNInf,
	}
}

// Shape returns the (B, H, W, C) shape.
// Complexity: O(1).
func (t *Dense) Shape() Shape {
	return t.shape
}

// Len returns the number of scalar elements.
// Complexity: O(1).
func (t *Dense) Len() int {
	return len(t.data)
}

// offset computes the flat index for (b, h, w, c) or returns ErrOutOfRange.
func (t *Dense) offset(method string, b, h, w, c int) (int, error) {
	s := t.shape
	if b < 0 || b >= s.B || h < 0 || h >= s.H || w < 0 || w >= s.W || c < 0 || c >= s.C {
		return 0, denseErrorf(method, b, h, w, c, ErrOutOfRange)
	}

	return ((b*s.H+h)*s.W+w)*s.C + c, nil
}

// At retrieves the element at (b, h, w, c).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (t *Dense) At(b, h, w, c int) (float64, error) {
	idx, err := t.offset(ctxAt, b, h, w, c)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns v at (b, h, w, c).
// Errors: ErrOutOfRange, ErrNaNInf (when the numeric policy is on).
// Complexity: O(1).
func (t *Dense) Set(b, h, w, c int, v float64) error {
	idx, err := t.offset(ctxSet, b, h, w, c)
	if err != nil {
		return err
	}
	if t.validateNaNInf {
		if err = validateFinite(v); err != nil {
			return denseErrorf(ctxSet, b, h, w, c, err)
		}
	}
	t.data[idx] = v

	return nil
}

// Values returns a copy of the flat NHWC buffer.
func (t *Dense) Values() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy with the same shape and numeric policy.
// Complexity: O(n).
func (t *Dense) Clone() *Dense {
	out := newLike(t)
	copy(out.data, t.data)

	return out
}

// String implements fmt.Stringer: one bracketed line per (b, h) row,
// each pixel rendered as its channel vector.
func (t *Dense) String() string {
	if t == nil {
		return "<nil>"
	}
	var sb strings.Builder
	s := t.shape
	fmt.Fprintf(&sb, "Dense%v\n", s)
	for b := 0; b < s.B; b++ {
		for h := 0; h < s.H; h++ {
			sb.WriteString(_fmtOpen)
			for w := 0; w < s.W; w++ {
				base := ((b*s.H+h)*s.W + w) * s.C
				sb.WriteString(_fmtOpen)
				for c := 0; c < s.C; c++ {
					fmt.Fprintf(&sb, "%g", t.data[base+c])
					if c < s.C-1 {
						sb.WriteString(_fmtSep)
					}
				}
				sb.WriteString(_fmtClose)
				if w < s.W-1 {
					sb.WriteString(_fmtSep)
				}
			}
			sb.WriteString(_fmtClose)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
