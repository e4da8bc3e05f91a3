// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tensor
// package. Kernels return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user input.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and grepping.
// Kernels wrap with tensorErrorf(op, ErrX); callers still match via errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> numeric policy.

var (
	// ErrBadShape is returned when a requested shape has a non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index (b, h, w or c) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// or a per-channel vector whose length differs from C.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrDataLength indicates that a flat buffer does not hold exactly B*H*W*C values.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (FromSlice, Full, Set).
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNilTensor indicates that a nil *Dense (argument or receiver) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadRange indicates an invalid closed interval, e.g. Clip with lo > hi.
	ErrBadRange = errors.New("tensor: invalid range")

	// ErrNilFunc indicates that Apply was called without a mapping function.
	ErrNilFunc = errors.New("tensor: nil function")
)
