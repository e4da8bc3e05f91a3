// Package losses computes segmentation metrics and training losses over
// (B, H, W, C) mask tensors.
//
// 🚀 What is in here?
//
//	IoU (Jaccard) score, Jaccard loss and the combined binary-cross-entropy +
//	Jaccard loss used to train segmentation networks on imbalanced masks:
//	  • IoUScore / JaccardScore: soft or thresholded intersection over union
//	  • JaccardLoss: 1 − IoUScore, differentiable
//	  • BinaryCrossEntropy: clipped, averaged over every element
//	  • BCEJaccardLoss: bceWeight·BCE + JaccardLoss
//
// ✨ Key features:
//   - per-image (default) or whole-batch aggregation (WithPerImage)
//   - per-class weights (WithClassWeights) and smoothing (WithSmooth)
//   - strict-threshold binarization for metrics only (WithThreshold)
//   - analytic gradients with respect to the prediction (…Grad)
//   - name registry for config-driven training code (New, Lookup, Names)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/segloss/losses"
//
//	score, err := losses.IoUScore(gt, pr, losses.WithThreshold(0.5))
//	loss, err := losses.BCEJaccardLoss(gt, pr, losses.WithBCEWeight(0.5))
//	grad, err := losses.BCEJaccardLossGrad(gt, pr, losses.WithBCEWeight(0.5))
//
// Every function is pure: inputs are never mutated and concurrent calls are
// safe. Shape errors surface as tensor.ErrNilTensor or
// tensor.ErrDimensionMismatch wrapped with the operation name.
//
// Performance:
//
//   - Time:   O(B·H·W·C)
//   - Memory: O(B·H·W·C) scratch for element-wise products
package losses
