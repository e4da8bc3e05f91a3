// SPDX-License-Identifier: MIT

// Package segloss is a small library of segmentation metrics and losses over
// dense (B, H, W, C) mask tensors.
//
// 🚀 What is segloss?
//
//	A pure-Go toolkit for scoring and training binary or multi-class
//	segmentation models:
//		• Tensors: 4-D NHWC float64 storage with element-wise kernels and
//		  spatial reductions
//		• Scores: soft and thresholded IoU (Jaccard index)
//		• Losses: Jaccard loss, clipped binary cross-entropy and their
//		  weighted sum
//		• Gradients: analytic ∂loss/∂prediction for every loss
//
// ✨ Why choose segloss?
//
//   - Deterministic: fixed reduction order, bit-reproducible results
//   - Safe: inputs are never mutated, sentinel errors for every failure
//   - Configurable: functional options with documented defaults
//
// Under the hood, everything is organized under two subpackages:
//
//	tensor/  - Shape, Dense, element-wise ops, reductions and validators
//	losses/  - IoUScore, JaccardLoss, BinaryCrossEntropy, BCEJaccardLoss,
//	           their gradients and the name registry
//
// Quick example:
//
//	gt, _ := tensor.FromSlice(tensor.Shape{B: 1, H: 2, W: 2, C: 1}, []float64{1, 0, 1, 0})
//	pr, _ := tensor.FromSlice(tensor.Shape{B: 1, H: 2, W: 2, C: 1}, []float64{0.9, 0.1, 0.8, 0.2})
//	loss, _ := losses.BCEJaccardLoss(gt, pr) // 0.3461
//
// See examples/ for a gradient-descent walkthrough.
package segloss
