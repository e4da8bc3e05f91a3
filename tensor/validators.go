// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite checks follow a fixed sequence (NotNil → Shape).

package tensor

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Returns wrapped ErrNilTensor if t == nil.
// Complexity: O(1).
func ValidateNotNil(t *Dense) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateShape ensures every dimension of s is strictly positive.
// Complexity: O(1).
func ValidateShape(s Shape) error {
	dims := s.Dims()
	if !lo.EveryBy(dims[:], func(d int) bool { return d > 0 }) {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures a and b are both non-nil and have equal shapes.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.shape != b.shape {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %v vs %v", a.shape, b.shape),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures a per-axis vector has exactly n entries.
// A nil vector is treated as length 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: got %d want %d", len(x), n),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateFinite checks a single value against the numeric policy.
func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
