// Package tensor provides a small dense NHWC tensor for segmentation masks.
//
// The tensor package provides:
//
//   - Dense, a row-major (B, H, W, C) float64 buffer with bounds-checked
//     At/Set and an optional NaN/Inf ingestion policy.
//   - Element-wise kernels (Add, Sub, Mul, Scale, AddScalar, Greater, Clip,
//     Log, Apply) that always allocate a fresh result.
//   - Reductions over the spatial axes (SumSpatial → [B][C]), over batch and
//     space (SumBatchSpatial → [C]), and over everything (Sum, Mean).
//
// Errors are package sentinels (ErrBadShape, ErrDimensionMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
//
// Usage:
//
//	gt, _ := tensor.FromSlice(tensor.Shape{B: 1, H: 2, W: 2, C: 1}, []float64{1, 1, 0, 0})
//	pr, _ := tensor.Full(gt.Shape(), 0.5)
//	inter, _ := tensor.Mul(gt, pr)
//	perImage, _ := tensor.SumSpatial(inter) // [[1]]
package tensor
