// SPDX-License-Identifier: MIT

// Package tensor: domain types shared by Dense, kernels and reductions.
// This file intentionally contains ONLY shape/axis types. Errors and options
// live in dedicated files (errors.go, options.go).
package tensor

import "fmt"

// Axis names one of the four NHWC dimensions.
type Axis int

const (
	// AxisBatch is the image index inside a batch (B).
	AxisBatch Axis = iota
	// AxisHeight is the row index inside an image (H).
	AxisHeight
	// AxisWidth is the column index inside an image (W).
	AxisWidth
	// AxisChannel is the class/channel index (C).
	AxisChannel
)

// Rank is the number of dimensions of every Dense tensor.
const Rank = 4

// String returns the conventional single-letter axis name.
func (a Axis) String() string {
	switch a {
	case AxisBatch:
		return "B"
	case AxisHeight:
		return "H"
	case AxisWidth:
		return "W"
	case AxisChannel:
		return "C"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Shape describes a (B, H, W, C) tensor.
// All four dimensions must be > 0; see ValidateShape.
type Shape struct {
	B, H, W, C int
}

// Len returns B*H*W*C, the number of scalar elements.
// Complexity: O(1).
func (s Shape) Len() int {
	return s.B * s.H * s.W * s.C
}

// Dim returns the size of the given axis, or 0 for an unknown axis.
func (s Shape) Dim(a Axis) int {
	switch a {
	case AxisBatch:
		return s.B
	case AxisHeight:
		return s.H
	case AxisWidth:
		return s.W
	case AxisChannel:
		return s.C
	default:
		return 0
	}
}

// Dims returns the dimensions in NHWC order.
func (s Shape) Dims() [Rank]int {
	return [Rank]int{s.B, s.H, s.W, s.C}
}

// String renders the shape as "(B, H, W, C)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s.B, s.H, s.W, s.C)
}
