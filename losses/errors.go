// SPDX-License-Identifier: MIT
// Package losses: sentinel error set.
// Shape problems surface as tensor sentinels (tensor.ErrNilTensor,
// tensor.ErrDimensionMismatch) wrapped with the loss operation tag; the
// sentinels below cover what is specific to this package.

package losses

import "errors"

var (
	// ErrUnsupportedOption is returned when an option that the operation
	// cannot honour is passed, e.g. a threshold to a differentiable loss, or
	// class weights to BCEJaccardLoss (whose Jaccard part uses unit weights).
	ErrUnsupportedOption = errors.New("losses: option not supported by this operation")

	// ErrUnknownLoss is returned by New/Lookup for an unregistered name.
	ErrUnknownLoss = errors.New("losses: unknown loss name")
)
